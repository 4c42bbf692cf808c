package report

import (
	"strings"
	"testing"

	"actas/models"
)

func TestRenderAnnexThreeStates(t *testing.T) {
	a := Annexes[0]
	tpl := "<p>{{" + a.Token + "}}</p>"

	si := Render(tpl, map[string]any{a.Key: "SI"})
	if !strings.Contains(si, a.Text) {
		t.Fatalf("con SI esperaba el texto del anexo, obtuve %q", si)
	}

	no := Render(tpl, map[string]any{a.Key: "NO"})
	if !strings.Contains(no, "FALTA: "+a.Text) {
		t.Fatalf("con NO esperaba la línea FALTA, obtuve %q", no)
	}

	otro := Render(tpl, map[string]any{a.Key: "OTRO"})
	if strings.Contains(otro, "<p>") {
		t.Fatalf("con valor no reconocido el párrafo debe eliminarse, obtuve %q", otro)
	}

	if si == no || no == otro || si == otro {
		t.Fatal("los tres estados del anexo deben producir salidas distintas")
	}
}

func TestRenderAnnexCaseInsensitive(t *testing.T) {
	a := Annexes[1]
	tpl := "<p>{{" + a.Token + "}}</p>"
	out := Render(tpl, map[string]any{a.Key: "si"})
	if !strings.Contains(out, a.Text) {
		t.Fatalf("\"si\" en minúsculas debe resolver al texto, obtuve %q", out)
	}
}

func TestRenderMissingAnnexRemovesParagraph(t *testing.T) {
	a := Annexes[2]
	tpl := "<p>antes</p><p>{{" + a.Token + "}}</p><p>después</p>"
	out := Render(tpl, map[string]any{})
	if strings.Contains(out, "<p></p>") {
		t.Fatalf("no debe quedar párrafo vacío: %q", out)
	}
	if !strings.Contains(out, "antes") || !strings.Contains(out, "después") {
		t.Fatalf("los párrafos vecinos deben sobrevivir: %q", out)
	}
}

func TestRenderLiteralSubstitution(t *testing.T) {
	tpl := "<p>{{entidad}} - {{anio}} - {{activo}}</p>"
	out := Render(tpl, map[string]any{
		"entidad": "Alcaldía de Mérida",
		"anio":    float64(2026), // como llega de un JSON decodificado
		"activo":  true,
	})
	want := "<p>Alcaldía de Mérida - 2026 - true</p>"
	if out != want {
		t.Fatalf("obtuve %q, esperaba %q", out, want)
	}
}

func TestRenderSkipsNestedValues(t *testing.T) {
	tpl := "<p>x{{detalle}}y</p>"
	out := Render(tpl, map[string]any{
		"detalle": map[string]any{"a": 1},
	})
	if out != "<p>xy</p>" {
		t.Fatalf("valor anidado debe resolver vacío, obtuve %q", out)
	}
}

func TestRenderNoTokensSurvive(t *testing.T) {
	tpl := "<p>{{noExiste}}</p><span>{{ tampoco }}</span>"
	out := Render(tpl, map[string]any{})
	if strings.Contains(out, "{{") || strings.Contains(out, "}}") {
		t.Fatalf("quedaron tokens sin resolver: %q", out)
	}
}

func TestRenderIdempotentOnCleanHTML(t *testing.T) {
	tpl, err := TemplateFor(models.ACTA_TYPE_SALIENTE_PAGA)
	if err != nil {
		t.Fatal(err)
	}
	data := map[string]any{
		"ciudad":           "Caracas",
		"servidorSaliente": "Pedro Pérez",
		Annexes[0].Key:     "SI",
		Annexes[1].Key:     "NO",
	}
	once := Render(tpl, data)
	twice := Render(once, data)
	if once != twice {
		t.Fatal("renderizar salida limpia debe ser idempotente")
	}
}

func TestTemplateForAllTypes(t *testing.T) {
	types := []string{
		models.ACTA_TYPE_ENTRANTE_PAGA,
		models.ACTA_TYPE_ENTRANTE_GRATIS,
		models.ACTA_TYPE_SALIENTE_PAGA,
		models.ACTA_TYPE_SALIENTE_GRATIS,
		models.ACTA_TYPE_MAXIMA_AUTORIDAD,
	}
	for _, typ := range types {
		tpl, err := TemplateFor(typ)
		if err != nil {
			t.Errorf("tipo %s: %v", typ, err)
		}
		if !strings.Contains(tpl, "ACTA DE ENTREGA") {
			t.Errorf("tipo %s: plantilla sospechosa", typ)
		}
	}
}

func TestTemplateForUnknownTypeFails(t *testing.T) {
	if _, err := TemplateFor("interina"); err == nil {
		t.Fatal("tipo desconocido debe ser un error duro, sin plantilla default")
	}
}

func TestFindingsForOnlyNegatives(t *testing.T) {
	metadata := map[string]any{
		Findings[0].Key: "NO",
		Findings[1].Key: "SI",
		Findings[2].Key: false,
	}
	fs := FindingsFor(metadata)
	if len(fs) != 2 {
		t.Fatalf("esperaba 2 hallazgos, obtuve %d", len(fs))
	}
	for _, f := range fs {
		if f.Key == Findings[1].Key {
			t.Fatal("una respuesta SI no es hallazgo")
		}
	}
}

func TestLegalCorpusCachedAndResettable(t *testing.T) {
	first := LegalCorpus()
	if len(first) == 0 {
		t.Fatal("corpus vacío")
	}
	if LegalBasis("NREOE-4") == "" {
		t.Fatal("artículo conocido sin texto")
	}
	ResetLegalCorpus()
	if len(LegalCorpus()) != len(first) {
		t.Fatal("tras invalidar, la recarga debe reponer el corpus completo")
	}
}
