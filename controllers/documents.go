package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	dbpkg "actas/db"
	"actas/models"
	"actas/report"
	"actas/tools"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// buildActaDocx arma el DOCX del acta: plantilla por tipo, sustitución de
// placeholders con el metadata y empaquetado.
func buildActaDocx(acta *models.Acta) ([]byte, error) {
	tpl, err := report.TemplateFor(acta.Type)
	if err != nil {
		return nil, err
	}
	html := report.Render(tpl, acta.MetadataMap())
	return report.BuildDocx(html)
}

// GET /api/actas/:id/document
// Genera el DOCX, archiva una copia y lo devuelve; el acta pasa a descargada.
func DownloadActaDocument(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	acta, ok := findOwnedActa(c, id)
	if !ok {
		return
	}

	docx, err := buildActaDocx(acta)
	if err != nil {
		if _, tplErr := report.TemplateFor(acta.Type); tplErr != nil {
			// tipo sin plantilla: error del request, no del servidor
			RespondError(c, tplErr.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.Printf("documents: acta %d: generación: %v", acta.ID, err)
		RespondError(c, "error interno al generar el documento", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("acta-%d-%s.docx", acta.ID, uuid.NewString())
	if _, err := tools.NewStore().Save(filename, docx); err != nil {
		// la descarga no se bloquea por el archivado
		log.Printf("documents: acta %d: archivado: %v", acta.ID, err)
	}

	db := dbpkg.DBInstance(c)
	if err := db.Model(&models.Acta{}).
		Where("id = ?", acta.ID).
		Update("status", models.ACTA_STATUS_DESCARGADA).Error; err != nil {
		log.Printf("documents: acta %d: status: %v", acta.ID, err)
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, docxMIME, docx)
}

// POST /api/actas/:id/send
// Body: { "email": "..." } (opcional; por defecto el correo del dueño)
func SendActaDocument(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	acta, ok := findOwnedActa(c, id)
	if !ok {
		return
	}

	var req struct {
		Email string `json:"email" form:"email"`
	}
	_ = c.ShouldBind(&req) // body opcional
	if req.Email == "" {
		user, _ := GetUserLogged(c)
		req.Email = user.Email
	}

	docx, err := buildActaDocx(acta)
	if err != nil {
		if _, tplErr := report.TemplateFor(acta.Type); tplErr != nil {
			RespondError(c, tplErr.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.Printf("documents: acta %d: generación: %v", acta.ID, err)
		RespondError(c, "error interno al generar el documento", http.StatusInternalServerError)
		return
	}

	body := fmt.Sprintf("<p>Adjunto el acta de entrega N° %d generada por el sistema.</p>", acta.ID)
	att := tools.Attachment{
		Name:    fmt.Sprintf("acta-%d.docx", acta.ID),
		Content: docx,
	}
	if err := tools.SendMail(req.Email, "Acta de entrega", body, att); err != nil {
		log.Printf("documents: acta %d: envío a %s: %v", acta.ID, req.Email, err)
		RespondError(c, "error interno al enviar el documento", http.StatusInternalServerError)
		return
	}

	db := dbpkg.DBInstance(c)
	if err := db.Model(&models.Acta{}).
		Where("id = ?", acta.ID).
		Update("status", models.ACTA_STATUS_ENVIADA).Error; err != nil {
		log.Printf("documents: acta %d: status: %v", acta.ID, err)
	}

	RespondSuccess(c, gin.H{"status": "sent", "to": req.Email})
}

type FindingAnalysis struct {
	Question  string `json:"question"`
	Condition string `json:"condition"`
	Analysis  string `json:"analysis"`
}

// POST /api/actas/:id/analysis
// Genera la narrativa de cada hallazgo con el servicio generativo. Las
// llamadas van en serie con una pausa fija entre ellas; un fallo individual
// degrada a un texto sustituto y no aborta el análisis.
func AnalyzeActa(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	acta, ok := findOwnedActa(c, id)
	if !ok {
		return
	}

	findings := report.FindingsFor(acta.MetadataMap())
	out := make([]FindingAnalysis, 0, len(findings))

	for i, f := range findings {
		if i > 0 {
			time.Sleep(tools.ThrottleDelay())
		}
		text, err := tools.AnalyzeFinding(c.Request.Context(), f.Question, f.Condition)
		if err != nil {
			log.Printf("analysis: acta %d: hallazgo %s: %v", acta.ID, f.Key, err)
			text = tools.AI_UNAVAILABLE_TEXT
		}
		out = append(out, FindingAnalysis{
			Question:  f.Question,
			Condition: f.Condition,
			Analysis:  text,
		})
	}

	RespondSuccess(c, gin.H{
		"acta_id":     acta.ID,
		"findings":    out,
		"legal_basis": report.LegalBasis("NREOE-10"),
	})
}
