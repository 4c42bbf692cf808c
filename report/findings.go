package report

// Finding vincula una respuesta del formulario con la pregunta de control y
// la condición de incumplimiento que el adaptador generativo debe narrar.
type Finding struct {
	Key       string
	Question  string
	Condition string
}

// Findings es la tabla estática de hallazgos posibles; solo la consume el
// endpoint de análisis.
var Findings = []Finding{
	{"disponeEstadosFinancieros", "¿Se anexaron los estados financieros a la fecha de la entrega?", "No se presentaron los estados financieros exigidos por la normativa."},
	{"disponeEjecucionPresupuestaria", "¿Se anexó la relación de ejecución presupuestaria?", "No se presentó la relación de la ejecución presupuestaria del ejercicio."},
	{"disponeSituacionTesoro", "¿Se anexó el estado de la situación del tesoro?", "No se presentó el estado de la situación del tesoro ni sus conciliaciones."},
	{"disponeInventarioBienes", "¿Se anexó el inventario de bienes muebles e inmuebles?", "No se presentó el inventario de bienes adscritos al órgano."},
	{"disponeRelacionCuentasBancarias", "¿Se anexó la relación de cuentas bancarias?", "No se presentó la relación de cuentas bancarias ni las firmas autorizadas."},
	{"disponeNominaPersonal", "¿Se anexó la nómina del personal?", "No se presentó la nómina del personal activo, jubilado y pensionado."},
	{"disponeContratosVigentes", "¿Se anexó la relación de contratos vigentes?", "No se presentó la relación de contratos y compromisos vigentes."},
	{"disponeCuentasPorPagar", "¿Se anexó la relación de cuentas por pagar?", "No se presentó la relación de cuentas por pagar."},
	{"disponeCuentasPorCobrar", "¿Se anexó la relación de cuentas por cobrar?", "No se presentó la relación de cuentas por cobrar."},
	{"disponeInformeGestion", "¿Se anexó el informe de gestión?", "No se presentó el informe de gestión del período."},
	{"disponePlanOperativo", "¿Se anexó el plan operativo anual?", "No se presentó el plan operativo anual ni su grado de ejecución."},
	{"disponeArchivoDocumental", "¿Se anexó el inventario del archivo documental?", "No se presentó el inventario del archivo documental y sistemas."},
	{"disponeCajaChica", "¿Se anexó el arqueo de caja chica?", "No se presentó el arqueo de caja chica y fondos en avance."},
	{"disponeObservacionesControl", "¿Se informaron las observaciones de los órganos de control?", "No se informaron las observaciones pendientes de los órganos de control fiscal."},
}

// FindingsFor devuelve los hallazgos cuya respuesta en el metadata es "NO"
// (o el booleano false). Respuestas ausentes o afirmativas no generan nada.
func FindingsFor(metadata map[string]any) []Finding {
	var out []Finding
	for _, f := range Findings {
		raw, ok := metadata[f.Key]
		if !ok {
			continue
		}
		switch v := raw.(type) {
		case string:
			if v == "NO" || v == "no" || v == "No" {
				out = append(out, f)
			}
		case bool:
			if !v {
				out = append(out, f)
			}
		}
	}
	return out
}
