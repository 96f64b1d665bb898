package fuzztests

import "testing"

const maxSeedBytes = 64 << 10 // 64 KiB cap for the seed corpus

var languageSeeds = []string{
	"",
	"let x = 1;",
	"let name = \"mira\";",
	"fn add(a: int, b: int) -> int { a + b }",
	"fn greet(who: string) -> string { upper(who) }",
	"println(len(\"hello\"));",
	"let ok = 1 < 2 and true;",
	"1 + 2 * 3 - -4",
	"fn f() -> int { f() }",
	"let a = 1; let b = a + 1; println(b);",
	"// just a comment\n",
	"\"unterminated",
	"let x = 1x;",
	"let \x00 = 1;",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range languageSeeds {
		f.Add(clampSeed([]byte(seed)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
