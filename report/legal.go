package report

import "sync"

// Corpus legal citado en los análisis. Se carga una sola vez por proceso y se
// reutiliza; no hay expiración. ResetLegalCorpus existe como gancho explícito
// de invalidación para cuando el corpus pase a cargarse de una fuente externa.

var (
	legalMu     sync.Mutex
	legalOnce   *sync.Once
	legalCorpus map[string]string
)

func init() {
	legalOnce = new(sync.Once)
}

func LegalCorpus() map[string]string {
	legalMu.Lock()
	once := legalOnce
	legalMu.Unlock()

	once.Do(loadLegalCorpus)
	return legalCorpus
}

// LegalBasis devuelve el texto del artículo citado, o "" si no existe.
func LegalBasis(article string) string {
	return LegalCorpus()[article]
}

// ResetLegalCorpus descarta el corpus cargado; la próxima lectura lo vuelve a
// cargar.
func ResetLegalCorpus() {
	legalMu.Lock()
	defer legalMu.Unlock()
	legalOnce = new(sync.Once)
	legalCorpus = nil
}

func loadLegalCorpus() {
	legalCorpus = map[string]string{
		"NREOE-4": "Artículo 4. La entrega se hará constar en acta elaborada " +
			"por el servidor público saliente, en presencia del servidor " +
			"público entrante, en la cual se describirá la situación general " +
			"del órgano, entidad, oficina o dependencia que se entrega.",
		"NREOE-10": "Artículo 10. El acta de entrega deberá ser suscrita por " +
			"el servidor público que entrega y por el que recibe, y se " +
			"acompañará de los anexos que correspondan según la naturaleza " +
			"del órgano o entidad.",
		"NREOE-11": "Artículo 11. Cuando el servidor público saliente no " +
			"procediere a la entrega, la máxima autoridad jerárquica dejará " +
			"constancia de tal situación y elaborará el acta con vista a la " +
			"información disponible.",
		"NREOE-18": "Artículo 18. El servidor público entrante examinará el " +
			"contenido del acta y sus anexos, y comunicará a la máxima " +
			"autoridad jerárquica las observaciones a que hubiere lugar.",
		"LOCGR-51": "Artículo 51. Quienes administren, manejen o custodien " +
			"recursos públicos están obligados a formar y rendir cuenta de " +
			"las operaciones y resultados de su gestión.",
	}
}
