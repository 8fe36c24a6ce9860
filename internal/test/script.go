package test

import (
	"math/rand"
	"strings"
)

const validTokens = "x|y|total|a1|=|+|-|*|/|(|)|;|0|42|3.14|1000000|% a comment\n|\n"

func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, "|")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}

var names = []string{"a", "b", "c", "x", "y", "total"}

// GetRandomScript returns a script of size assignments that always parses
// and evaluates: every right-hand side references at most one name, bound
// earlier, so values grow slowly enough never to overflow.
func GetRandomScript(size int) string {
	var sb strings.Builder
	bound := []string{}

	for i := 0; i < size; i++ {
		name := names[rand.Intn(len(names))]

		sb.WriteString(name)
		sb.WriteString(" = ")
		sb.WriteString(randomExpr(bound, 3, new(bool)))
		sb.WriteString(";\n")

		bound = append(bound, name)
	}

	return sb.String()
}

func randomExpr(bound []string, depth int, referenced *bool) string {
	if depth == 0 || rand.Intn(3) == 0 {
		if !*referenced && len(bound) > 0 && rand.Intn(2) == 0 {
			*referenced = true
			return bound[rand.Intn(len(bound))]
		}

		return []string{"1", "2", "7", "0.5", "3.25"}[rand.Intn(5)]
	}

	switch rand.Intn(4) {
	case 0:
		return "-" + randomExpr(bound, depth-1, referenced)
	case 1:
		return "(" + randomExpr(bound, depth-1, referenced) + ")"
	default:
		ops := []string{" + ", " - "}
		return randomExpr(bound, depth-1, referenced) + ops[rand.Intn(len(ops))] + randomExpr(bound, depth-1, referenced)
	}
}
