package jchunk_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/timvandam/jchunk"
	"github.com/timvandam/jchunk/ast"
)

// benchInput constructs a document of roughly n episodes, each a small object
// with strings, numbers, and nested arrays.
func benchInput(n int) string {
	list := make(ast.Array, n)
	for i := range n {
		list[i] = ast.Object{
			ast.Field("episode", ast.Int(int64(i))),
			ast.Field("summary", ast.String(fmt.Sprintf("Episode %d: in which \"things\" happen\n", i))),
			ast.Field("rating", ast.Float(float64(i%50)/10)),
			ast.Field("hasDetail", ast.Bool(i%2 == 0)),
			ast.Field("tags", ast.Array{ast.String("a"), ast.String("b"), ast.Null{}}),
		}
	}
	return ast.Object{ast.Field("episodes", list)}.JSON()
}

func BenchmarkDriver(b *testing.B) {
	input := benchInput(2000)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for b.Loop() {
			dec := json.NewDecoder(strings.NewReader(input))
			var v any
			if err := dec.Decode(&v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	for _, size := range []int{16, 512, 4096, 65536} {
		b.Run(fmt.Sprintf("Driver-%d", size), func(b *testing.B) {
			for b.Loop() {
				d := jchunk.NewDriver(jchunk.NewReaderSource(bytes.NewReader([]byte(input)), size))
				for {
					_, err := d.Next(context.Background())
					if err == io.EOF {
						break
					} else if err != nil {
						b.Fatalf("Unexpected error: %v", err)
					}
				}
			}
		})
	}
}
