package report

import _ "embed"

//go:embed templates/acta_entrante.html
var templateEntrante string

//go:embed templates/acta_saliente.html
var templateSaliente string

//go:embed templates/acta_maxima_autoridad.html
var templateMaximaAutoridad string
