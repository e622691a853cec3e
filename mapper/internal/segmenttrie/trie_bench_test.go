/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package segmenttrie

import (
	"math/rand"
	"strings"
	"testing"
)

func randomSegment(rng *rand.Rand) string {
	n := 3 + rng.Intn(6)
	b := make([]byte, n)
	b[0] = byte('a' + rng.Intn(26))
	for i := 1; i < n; i++ {
		b[i] = "abcdefghijklmnopqrstuvwxyz0123456789_"[rng.Intn(37)]
	}
	return string(b)
}

// buildRules inserts n rules of the given depth, replacing every k-th
// segment with a wildcard when k > 0, and returns codes that extend them.
func buildRules(b *testing.B, n, depth, k int) (*Trie[int], []string) {
	rng := rand.New(rand.NewSource(1))
	tr := New[int]()
	codes := make([]string, 0, n)
	for i := 0; i < n; i++ {
		rule := make([]string, depth)
		code := make([]string, depth+1)
		for j := 0; j < depth; j++ {
			code[j] = randomSegment(rng)
			rule[j] = code[j]
			if k > 0 && (j+1)%k == 0 {
				rule[j] = wildcard
			}
		}
		code[depth] = randomSegment(rng)
		if err := tr.Insert(strings.Join(rule, "."), i); err != nil {
			b.Fatalf("Insert: %v", err)
		}
		codes = append(codes, strings.Join(code, "."))
	}
	return tr, codes
}

func BenchmarkMatch_N128_Depth3(b *testing.B)                 { benchMatch(b, 128, 3, 0) }
func BenchmarkMatch_N1024_Depth4(b *testing.B)                { benchMatch(b, 1024, 4, 0) }
func BenchmarkMatch_N1024_Depth4_WildcardEvery2(b *testing.B) { benchMatch(b, 1024, 4, 2) }

func benchMatch(b *testing.B, n, depth, k int) {
	tr, codes := buildRules(b, n, depth, k)
	b.ReportAllocs()
	b.ResetTimer()
	hits := 0
	for i := 0; i < b.N; i++ {
		if _, ok := tr.Match(codes[i%len(codes)]); ok {
			hits++
		}
	}
	if hits == 0 {
		b.Fatal("no hits")
	}
}

func BenchmarkMatchParallel_N1024_Depth4(b *testing.B) {
	tr, codes := buildRules(b, 1024, 4, 0)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = tr.Match(codes[i%len(codes)])
			i++
		}
	})
}
