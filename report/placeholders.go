// Package report arma el documento final de un acta: plantilla HTML por tipo
// de acta, sustitución de placeholders {{token}}, texto condicional de anexos
// y conversión a DOCX.
package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"actas/models"
)

// Annex vincula una respuesta dispone* del formulario con su token en la
// plantilla y el texto descriptivo del anexo.
type Annex struct {
	Key   string // clave de respuesta en el metadata del acta
	Token string // placeholder en la plantilla
	Text  string // línea descriptiva cuando el anexo existe
}

// Annexes es la tabla estática de anexos; solo se usa al renderizar.
var Annexes = []Annex{
	{"disponeEstadosFinancieros", "Anexo_1", "Estados financieros a la fecha de la entrega."},
	{"disponeEjecucionPresupuestaria", "Anexo_2", "Relación de la ejecución presupuestaria del ejercicio."},
	{"disponeSituacionTesoro", "Anexo_3", "Estado de la situación del tesoro y conciliaciones bancarias."},
	{"disponeInventarioBienes", "Anexo_4", "Inventario de bienes muebles e inmuebles adscritos."},
	{"disponeRelacionCuentasBancarias", "Anexo_5", "Relación de cuentas bancarias y firmas autorizadas."},
	{"disponeNominaPersonal", "Anexo_6", "Nómina del personal activo, jubilado y pensionado."},
	{"disponeContratosVigentes", "Anexo_7", "Relación de contratos y compromisos vigentes."},
	{"disponeCuentasPorPagar", "Anexo_8", "Relación de cuentas por pagar a la fecha de la entrega."},
	{"disponeCuentasPorCobrar", "Anexo_9", "Relación de cuentas por cobrar a la fecha de la entrega."},
	{"disponeInformeGestion", "Anexo_10", "Informe de gestión del período de ejercicio del cargo."},
	{"disponePlanOperativo", "Anexo_11", "Plan operativo anual y su grado de ejecución."},
	{"disponeArchivoDocumental", "Anexo_12", "Inventario del archivo documental y de los sistemas de información."},
	{"disponeCajaChica", "Anexo_13", "Arqueo de caja chica y fondos en avance."},
	{"disponeObservacionesControl", "Anexo_14", "Observaciones pendientes de los órganos de control fiscal."},
}

const missingPrefix = "FALTA: "

var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// Render sustituye todos los {{token}} de la plantilla en cuatro pasadas:
// resolución de anexos, elisión de párrafos vacíos, sustitución literal y
// limpieza residual. El orden importa: los tokens de anexo usan la misma
// sintaxis que los campos comunes y deben resolverse antes de que la limpieza
// general los deje en blanco. La salida nunca contiene un {{...}}.
func Render(tpl string, data map[string]any) string {
	// 1) resolución de anexos: SI -> texto, NO -> "FALTA: texto", otro -> ""
	resolved := map[string]string{}
	for _, a := range Annexes {
		resolved[a.Token] = resolveAnnex(a, data)
	}

	out := tpl

	// 2) un párrafo cuyo único contenido es un placeholder que resolvió a ""
	// se elimina entero, no queda como párrafo vacío en el documento
	for token, text := range resolved {
		if text != "" {
			continue
		}
		re := regexp.MustCompile(`<p[^>]*>\s*\{\{\s*` + regexp.QuoteMeta(token) + `\s*\}\}\s*</p>\s*`)
		out = re.ReplaceAllString(out, "")
	}

	// 3) sustitución: primero anexos, luego valores escalares del registro
	out = placeholderRe.ReplaceAllStringFunc(out, func(m string) string {
		name := placeholderRe.FindStringSubmatch(m)[1]
		if text, ok := resolved[name]; ok {
			return text
		}
		if v, ok := data[name]; ok {
			if s, ok := stringifyScalar(v); ok {
				return s
			}
		}
		// 4) limpieza residual: sin clave (o valor anidado) -> vacío
		return ""
	})

	return out
}

func resolveAnnex(a Annex, data map[string]any) string {
	raw, ok := data[a.Key]
	if !ok {
		return ""
	}
	s, _ := raw.(string)
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SI", "SÍ":
		return a.Text
	case "NO":
		return missingPrefix + a.Text
	}
	return ""
}

// stringifyScalar convierte string/número/bool a texto; los valores anidados
// (objetos, listas) se omiten y caen en la limpieza residual.
func stringifyScalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10), true
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	}
	return "", false
}

// TemplateFor devuelve la plantilla HTML del tipo de acta. Un tipo no
// reconocido es un error duro: no hay plantilla por defecto.
func TemplateFor(actaType string) (string, error) {
	switch actaType {
	case models.ACTA_TYPE_ENTRANTE_PAGA, models.ACTA_TYPE_ENTRANTE_GRATIS:
		return templateEntrante, nil
	case models.ACTA_TYPE_SALIENTE_PAGA, models.ACTA_TYPE_SALIENTE_GRATIS:
		return templateSaliente, nil
	case models.ACTA_TYPE_MAXIMA_AUTORIDAD:
		return templateMaximaAutoridad, nil
	}
	return "", fmt.Errorf("tipo de acta no reconocido: %q", actaType)
}
