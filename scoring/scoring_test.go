package scoring

import (
	"strconv"
	"strings"
	"testing"
)

func TestEvaluateEmptyAnswers(t *testing.T) {
	r := Evaluate(map[string]any{})
	if r.HasAnswers {
		t.Fatal("conjunto vacío no debe marcar HasAnswers")
	}
	if r.Percentage != 0 || r.Obtained != 0 {
		t.Fatalf("esperaba 0, obtuve pct=%d obtained=%f", r.Percentage, r.Obtained)
	}
}

func TestEvaluateAllFalseDistinctFromEmpty(t *testing.T) {
	r := Evaluate(map[string]any{"q1_acta": false})
	if !r.HasAnswers {
		t.Fatal("una respuesta false debe marcar HasAnswers")
	}
	if r.Percentage != 0 {
		t.Fatalf("esperaba 0%%, obtuve %d", r.Percentage)
	}
	if Summary(r) == Summary(Evaluate(nil)) {
		t.Fatal("la narrativa de 0% debe diferir de la de ausencia de acta")
	}
}

func TestEvaluateAllTrueIsHundred(t *testing.T) {
	answers := map[string]any{}
	for _, id := range QuestionIDs {
		answers[id+"_x"] = true
	}
	r := Evaluate(answers)
	if r.Percentage != 100 {
		t.Fatalf("todo true debe dar 100, obtuve %d", r.Percentage)
	}
	if r.Obtained != r.Max {
		t.Fatalf("obtained=%f debe igualar max=%f", r.Obtained, r.Max)
	}
}

func TestEvaluateIgnoresUnknownAndNonBoolean(t *testing.T) {
	r := Evaluate(map[string]any{
		"q999_raro": true,
		"q1_acta":   "SI", // string, no bool
		"entidad":   "Alcaldía",
	})
	if r.HasAnswers {
		t.Fatal("sin booleanos de preguntas reconocidas no hay respuestas")
	}
	if r.Obtained != 0 {
		t.Fatalf("nada debía sumar, obtuve %f", r.Obtained)
	}
}

func TestEvaluatePercentageInRange(t *testing.T) {
	answers := map[string]any{}
	for i, id := range QuestionIDs {
		answers[id+"_s"] = i%3 == 0
	}
	r := Evaluate(answers)
	if r.Percentage < 0 || r.Percentage > 100 {
		t.Fatalf("porcentaje fuera de rango: %d", r.Percentage)
	}
}

// Escenario de referencia: pesos 1 y 2, solo la pregunta de peso 1 en true.
// Con la tabla real no podemos fijar pesos arbitrarios, así que se verifica
// la aritmética equivalente con dos preguntas de la tabla.
func TestEvaluatePartialArithmetic(t *testing.T) {
	answers := map[string]any{}
	var want float64
	for _, id := range QuestionIDs {
		answers[id+"_s"] = false
	}
	// marca en true las primeras dos preguntas con peso > 0
	marked := 0
	for _, id := range QuestionIDs {
		if Weight(id) > 0 && marked < 2 {
			answers[id+"_s"] = true
			want += Weight(id)
			marked++
		}
	}
	r := Evaluate(answers)
	if r.Obtained != want {
		t.Fatalf("obtained=%f, esperaba %f", r.Obtained, want)
	}
}

func TestSummaryBands(t *testing.T) {
	cases := []struct {
		pct  int
		want string
	}{
		{10, "crítico"},
		{50, "crítico"},
		{51, "intermedio"},
		{75, "intermedio"},
		{76, "leves"},
		{99, "leves"},
		{100, "plena conformidad"},
	}
	for _, tc := range cases {
		s := Summary(Result{Percentage: tc.pct, HasAnswers: true})
		if !strings.Contains(s, tc.want) {
			t.Errorf("pct=%d: narrativa %q no contiene %q", tc.pct, s, tc.want)
		}
		if tc.pct > 0 && !strings.Contains(s, strconv.Itoa(tc.pct)+"%") {
			t.Errorf("pct=%d: narrativa no incluye el número", tc.pct)
		}
	}
}
