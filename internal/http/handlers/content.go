package handlers

import (
	"net/http"

	"travelbackend/internal/services"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves FAQs, legal pages, changelogs and contact messages.
// Public routes only ever see active content; admin routes see everything.
type ContentHandler struct {
	Service services.ContentService
}

// FAQs

type faqRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Status   string `json:"status"`
}

// POST /api/faqs (admin)
func (h ContentHandler) CreateFAQ(c *gin.Context) {
	var req faqRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	faq, err := h.Service.CreateFAQ(req.Question, req.Answer, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"faq": faqJSON(faq)})
}

// GET /api/faqs — public, active only unless the admin flag is set upstream.
func (h ContentHandler) ListFAQs(activeOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		faqs, err := h.Service.ListFAQs(activeOnly)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		out := make([]gin.H, 0, len(faqs))
		for _, f := range faqs {
			out = append(out, faqJSON(f))
		}
		c.JSON(http.StatusOK, gin.H{"faqs": out})
	}
}

type faqUpdateRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Status   *string `json:"status"`
}

// PUT /api/faqs/:id (admin)
func (h ContentHandler) UpdateFAQ(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var req faqUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	faq, err := h.Service.UpdateFAQ(id, req.Question, req.Answer, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"faq": faqJSON(faq)})
}

// DELETE /api/faqs/:id (admin)
func (h ContentHandler) DeleteFAQ(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteFAQ(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "faq deleted"})
}

// Legal pages

type legalPageRequest struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

// POST /api/legal (admin)
func (h ContentHandler) CreateLegalPage(c *gin.Context) {
	var req legalPageRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	page, err := h.Service.CreateLegalPage(req.Name, req.Slug, req.Content, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"legal_page": legalPageJSON(page)})
}

// GET /api/legal (admin) or public active listing
func (h ContentHandler) ListLegalPages(activeOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		pages, err := h.Service.ListLegalPages(activeOnly)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		out := make([]gin.H, 0, len(pages))
		for _, p := range pages {
			out = append(out, legalPageJSON(p))
		}
		c.JSON(http.StatusOK, gin.H{"legal_pages": out})
	}
}

// GET /api/legal-pages/:slug — public
func (h ContentHandler) GetLegalPageBySlug(c *gin.Context) {
	page, err := h.Service.GetLegalPageBySlug(c.Param("slug"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"legal_page": legalPageJSON(page)})
}

type legalPageUpdateRequest struct {
	Name    *string `json:"name"`
	Slug    *string `json:"slug"`
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

// PUT /api/legal/:id (admin)
func (h ContentHandler) UpdateLegalPage(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var req legalPageUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	page, err := h.Service.UpdateLegalPage(id, req.Name, req.Slug, req.Content, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"legal_page": legalPageJSON(page)})
}

// DELETE /api/legal/:id (admin)
func (h ContentHandler) DeleteLegalPage(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteLegalPage(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "legal page deleted"})
}

// Changelogs

type changeLogRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// POST /api/changelogs (admin)
func (h ContentHandler) CreateChangeLog(c *gin.Context) {
	var req changeLogRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	cl, err := h.Service.CreateChangeLog(req.Name, req.Content, req.Version, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"changelog": changeLogJSON(cl)})
}

// GET /api/changelogs
func (h ContentHandler) ListChangeLogs(activeOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		logs, err := h.Service.ListChangeLogs(activeOnly)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		out := make([]gin.H, 0, len(logs))
		for _, cl := range logs {
			out = append(out, changeLogJSON(cl))
		}
		c.JSON(http.StatusOK, gin.H{"changelogs": out})
	}
}

type changeLogUpdateRequest struct {
	Name    *string `json:"name"`
	Content *string `json:"content"`
	Version *string `json:"version"`
	Status  *string `json:"status"`
}

// PUT /api/changelogs/:id (admin)
func (h ContentHandler) UpdateChangeLog(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var req changeLogUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	cl, err := h.Service.UpdateChangeLog(id, req.Name, req.Content, req.Version, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"changelog": changeLogJSON(cl)})
}

// DELETE /api/changelogs/:id (admin)
func (h ContentHandler) DeleteChangeLog(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteChangeLog(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "changelog deleted"})
}

// Contacts

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// POST /api/contacts — public
func (h ContentHandler) CreateContact(c *gin.Context) {
	var req contactRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	contact, err := h.Service.CreateContact(req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"contact": contactJSON(contact)})
}

// GET /api/contacts?unread=true (admin)
func (h ContentHandler) ListContacts(c *gin.Context) {
	contacts, err := h.Service.ListContacts(c.Query("unread") == "true")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	out := make([]gin.H, 0, len(contacts))
	for _, ct := range contacts {
		out = append(out, contactJSON(ct))
	}
	c.JSON(http.StatusOK, gin.H{"contacts": out})
}

// GET /api/contacts/:id (admin)
func (h ContentHandler) GetContact(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	contact, err := h.Service.GetContact(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": contactJSON(contact)})
}

// PUT /api/contacts/:id/read (admin)
func (h ContentHandler) MarkContactRead(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	contact, err := h.Service.MarkContactRead(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": contactJSON(contact)})
}

// DELETE /api/contacts/:id (admin)
func (h ContentHandler) DeleteContact(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteContact(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "contact deleted"})
}
