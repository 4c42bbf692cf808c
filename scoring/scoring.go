// Package scoring calcula el puntaje ponderado de cumplimiento de una lista
// de verificación. Las respuestas llegan con claves q<N>_<slug> y solo el
// booleano true suma el peso de su pregunta.
package scoring

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// questionWeights es la tabla fija de pesos por pregunta. Las preguntas de
// peso 0 son informativas: se registran pero no afectan el puntaje.
var questionWeights = map[string]float64{
	// Identificación del acta y de los intervinientes
	"q1": 1.5, "q2": 1.5, "q3": 1, "q4": 1, "q5": 0.75,
	"q6": 0.75, "q7": 0.5, "q8": 0.5, "q9": 0, "q10": 0,
	// Estados financieros y situación presupuestaria
	"q11": 2, "q12": 2, "q13": 1.5, "q14": 1.5, "q15": 1.25,
	"q16": 1.25, "q17": 1, "q18": 1, "q19": 0.75, "q20": 0.5,
	// Situación del tesoro y cuentas bancarias
	"q21": 1.5, "q22": 1.5, "q23": 1.25, "q24": 1, "q25": 1,
	"q26": 0.75, "q27": 0.5, "q28": 0.5, "q29": 0.25, "q30": 0,
	// Inventario de bienes muebles e inmuebles
	"q31": 2, "q32": 1.5, "q33": 1.5, "q34": 1.25, "q35": 1,
	"q36": 1, "q37": 0.75, "q38": 0.75, "q39": 0.5, "q40": 0.25,
	// Recursos humanos y nómina
	"q41": 1.25, "q42": 1, "q43": 1, "q44": 0.75, "q45": 0.75,
	"q46": 0.5, "q47": 0.5, "q48": 0.25, "q49": 0, "q50": 0,
	// Contrataciones y compromisos pendientes
	"q51": 1.5, "q52": 1.25, "q53": 1.25, "q54": 1, "q55": 1,
	"q56": 0.75, "q57": 0.5, "q58": 0.5, "q59": 0.25, "q60": 0,
	// Archivo, correspondencia y sistemas
	"q61": 1, "q62": 0.75, "q63": 0.75, "q64": 0.5, "q65": 0.5,
	"q66": 0.5, "q67": 0.25, "q68": 0.25, "q69": 0, "q70": 0,
	// Ejecución del plan operativo
	"q71": 1.25, "q72": 1, "q73": 1, "q74": 0.75, "q75": 0.75,
	"q76": 0.5, "q77": 0.5, "q78": 0.25, "q79": 0.25, "q80": 0,
	// Observaciones de órganos de control
	"q81": 1.5, "q82": 1.25, "q83": 1, "q84": 0.75, "q85": 0.5,
	"q86": 0.5, "q87": 0.25, "q88": 0, "q89": 0, "q90": 0,
	// Formalidades de la suscripción del acta
	"q91": 1.5, "q92": 1.25, "q93": 1, "q94": 0.75, "q95": 0.5,
	"q96": 0.5, "q97": 0.25, "q98": 0.25,
}

// QuestionIDs es la enumeración canónica y ordenada de preguntas (q1..q98).
// Los DTO y la tabla de hallazgos se cuelgan de esta lista, no al revés.
var QuestionIDs []string

var maxScore float64

func init() {
	for i := 1; i <= 98; i++ {
		id := "q" + strconv.Itoa(i)
		QuestionIDs = append(QuestionIDs, id)
		maxScore += questionWeights[id]
	}
}

// MaxScore es la suma de todos los pesos (constante del proceso).
func MaxScore() float64 {
	return maxScore
}

// Weight devuelve el peso de una pregunta (0 si no existe).
func Weight(questionID string) float64 {
	return questionWeights[questionID]
}

// Result es el resultado de evaluar un conjunto de respuestas. HasAnswers
// distingue "nadie respondió nada" (ausencia de acta) de "respondieron y el
// puntaje fue 0".
type Result struct {
	Obtained   float64
	Max        float64
	Percentage int
	HasAnswers bool
}

// Evaluate suma el peso de cada pregunta cuya respuesta es exactamente true.
// Respuestas ausentes, false o de otro tipo no aportan nada. Nunca falla.
func Evaluate(answers map[string]any) Result {
	r := Result{Max: maxScore}
	for key, val := range answers {
		b, ok := val.(bool)
		if !ok {
			continue
		}
		w, known := questionWeights[questionID(key)]
		if !known {
			continue
		}
		r.HasAnswers = true
		if b {
			r.Obtained += w
		}
	}
	if maxScore > 0 {
		r.Percentage = int(math.Round(r.Obtained / maxScore * 100))
	}
	return r
}

// questionID recorta la clave q<N>_<slug> a su identificador q<N>.
func questionID(key string) string {
	if i := strings.IndexByte(key, '_'); i > 0 {
		return key[:i]
	}
	return key
}

// Summary elige la narrativa fija según la banda del porcentaje. Es una
// función pura del resultado: misma entrada, mismo texto.
func Summary(r Result) string {
	if !r.HasAnswers {
		return "No se evidenció la existencia del acta de entrega ni de su documentación de soporte, por lo que no es posible determinar el nivel de cumplimiento."
	}
	switch {
	case r.Percentage == 0:
		return "El acta de entrega presenta un nivel de cumplimiento del 0%, lo que constituye un incumplimiento total de la normativa aplicable."
	case r.Percentage <= 50:
		return fmt.Sprintf("El acta de entrega presenta un nivel de cumplimiento del %d%%, lo que representa un incumplimiento crítico de la normativa aplicable.", r.Percentage)
	case r.Percentage <= 75:
		return fmt.Sprintf("El acta de entrega presenta un nivel de cumplimiento del %d%%, lo que representa un incumplimiento intermedio de la normativa aplicable.", r.Percentage)
	case r.Percentage <= 99:
		return fmt.Sprintf("El acta de entrega presenta un nivel de cumplimiento del %d%%, con observaciones leves subsanables.", r.Percentage)
	default:
		return "El acta de entrega presenta un nivel de cumplimiento del 100%, en plena conformidad con la normativa aplicable."
	}
}
