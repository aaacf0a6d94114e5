package hash

import (
	"sync"
	"testing"

	"github.com/cespare/xxhash/v2"
)

var _ BytesFunc = XXHBytes

func TestXXHBytes(t *testing.T) {
	inputs := [][]byte{nil, {}, {0x61}, []byte("abc"), benchBytes()}
	for _, bs := range inputs {
		want := UInt64(xxhash.Sum64(bs))
		if got := XXHBytes(bs); got != want {
			t.Errorf("XXHBytes(% x) = %v, want %v", bs, got, want)
		}
		if XXHBytes(bs) != XXHBytes(bs) {
			t.Errorf("XXHBytes(% x) is not deterministic", bs)
		}
	}
}

func TestXXHBytesConcurrent(t *testing.T) {
	bs := benchBytes()
	want := XXHBytes(bs)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if XXHBytes(bs) != want {
					t.Errorf("XXHBytes returned a different value concurrently")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkXXHBytes(b *testing.B) {
	bs := benchBytes()
	b.SetBytes(int64(len(bs)))
	for i := 0; i < b.N; i++ {
		XXHBytes(bs)
	}
}
