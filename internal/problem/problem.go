package problem

import (
	"fmt"
	"math/rand"
	"strconv"
)

// ChoiceCount is the number of answers shown per question, one correct
// and the rest distractors.
const ChoiceCount = 4

// Question is a single round's prompt with its multiple-choice answers.
type Question struct {
	Prompt  string
	Answer  int
	Choices []int
	Correct int // index into Choices
}

// Generator produces level-scaled arithmetic questions.
type Generator struct {
	rand *rand.Rand

	// operands of the last generated expression, used by the
	// operand-confusion distractor strategies
	a, b int
	op   string
}

func NewGenerator(r *rand.Rand) *Generator {
	return &Generator{rand: r}
}

// Next returns a new question for the given level. Levels 1-3 use addition
// and subtraction, 4-6 add multiplication and whole-number division, 7 and
// above add powers, roots and mixed forms. Always succeeds.
func (g *Generator) Next(level int) *Question {
	if level < 1 {
		level = 1
	}

	var prompt string
	var ans int
	switch {
	case level <= 3:
		prompt, ans = g.basic(level)
	case level <= 6:
		prompt, ans = g.intermediate(level)
	default:
		prompt, ans = g.advanced(level)
	}

	q := &Question{Prompt: prompt, Answer: ans}
	wrong := g.distractors(ans, ChoiceCount-1)

	// place the correct answer at a random slot, fill the rest in order
	q.Correct = g.rand.Intn(ChoiceCount)
	q.Choices = make([]int, ChoiceCount)
	wi := 0
	for i := range q.Choices {
		if i == q.Correct {
			q.Choices[i] = ans
		} else {
			q.Choices[i] = wrong[wi]
			wi++
		}
	}
	return q
}

// basic: addition only at level 1, subtraction (never negative) from level 2.
func (g *Generator) basic(level int) (string, int) {
	max := 10 * level
	a := 1 + g.rand.Intn(max)
	b := 1 + g.rand.Intn(max)
	op := "+"
	if level > 1 && g.rand.Intn(2) == 1 {
		op = "-"
		if b > a {
			a, b = b, a
		}
	}
	g.a, g.b, g.op = a, b, op
	if op == "+" {
		return fmt.Sprintf("%d + %d", a, b), a + b
	}
	return fmt.Sprintf("%d - %d", a, b), a - b
}

func (g *Generator) intermediate(level int) (string, int) {
	max := 8 * level
	small := max / 2
	ops := []string{"+", "-", "*"}
	if level > 4 {
		ops = append(ops, "/")
	}
	op := ops[g.rand.Intn(len(ops))]

	a := 2 + g.rand.Intn(max-1)
	var b, ans int
	switch op {
	case "+":
		b = 1 + g.rand.Intn(max)
		ans = a + b
	case "-":
		b = 1 + g.rand.Intn(max)
		if b > a {
			a, b = b, a
		}
		ans = a - b
	case "*":
		b = 2 + g.rand.Intn(small-1)
		ans = a * b
	default: // division built backwards so it divides evenly
		b = 2 + g.rand.Intn(small-1)
		ans = 1 + g.rand.Intn(10)
		a = b * ans
	}
	g.a, g.b, g.op = a, b, op
	return fmt.Sprintf("%d %s %d", a, op, b), ans
}

func (g *Generator) advanced(level int) (string, int) {
	switch g.rand.Intn(5) {
	case 0: // square
		n := 2 + g.rand.Intn(19)
		g.a, g.b, g.op = n, n, "*"
		return fmt.Sprintf("%d^2", n), n * n
	case 1: // root of a perfect square
		r := 2 + g.rand.Intn(14)
		g.a, g.b, g.op = r, r, "sqrt"
		return fmt.Sprintf("sqrt(%d)", r*r), r
	case 2: // cube
		n := 2 + g.rand.Intn(9)
		g.a, g.b, g.op = n, n, "*"
		return fmt.Sprintf("%d^3", n), n * n * n
	case 3: // small power
		base := 2 + g.rand.Intn(7)
		exp := 2 + g.rand.Intn(3)
		ans := 1
		for i := 0; i < exp; i++ {
			ans *= base
		}
		g.a, g.b, g.op = base, exp, "^"
		return fmt.Sprintf("%d^%d", base, exp), ans
	default: // mixed a*b+c
		a := 2 + g.rand.Intn(14)
		b := 2 + g.rand.Intn(9)
		c := 2 + g.rand.Intn(19)
		g.a, g.b, g.op = a, b, "*"
		return fmt.Sprintf("%d * %d + %d", a, b, c), a*b + c
	}
}

// distractors builds count unique wrong answers close enough to the correct
// one to be plausible. Strategies mirror common mistakes: near misses,
// doubling/halving, sign flips, operand confusion, off-by-one and digit
// reversal, with a bounded random fallback.
func (g *Generator) distractors(correct, count int) []int {
	spread := abs(correct) / 5
	if spread < 2 {
		spread = 2
	}
	strategies := []func() int{
		func() int { return correct + 1 + g.rand.Intn(spread) },
		func() int { return correct - 1 - g.rand.Intn(spread) },
		func() int { return correct * 2 },
		func() int {
			if correct == 0 {
				return 1
			}
			return correct / 2
		},
		func() int { return -correct },
		func() int { return g.a + g.b },
		func() int { return g.a - g.b },
		func() int { return g.a * g.b },
		func() int { return correct + 1 },
		func() int { return correct - 1 },
		func() int { return reverseDigits(correct) },
	}

	maxDiff := abs(correct) * 2
	if maxDiff < 10 {
		maxDiff = 10
	}

	seen := map[int]bool{correct: true}
	out := make([]int, 0, count)
	for tries := 0; len(out) < count && tries < 64; tries++ {
		w := strategies[g.rand.Intn(len(strategies))]()
		if seen[w] || abs(w-correct) > maxDiff {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}

	// fallback keeps the guarantee even when every strategy collides
	for len(out) < count {
		w := correct - maxDiff + g.rand.Intn(2*maxDiff+1)
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

func reverseDigits(n int) int {
	sign := 1
	if n < 0 {
		sign = -1
		n = -n
	}
	s := strconv.Itoa(n)
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	r, _ := strconv.Atoi(string(b))
	return sign * r
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
