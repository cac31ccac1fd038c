package httpserver

import (
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appreports "github.com/sitewalk/inspection-api/internal/application/reportsvc"
	appsurveys "github.com/sitewalk/inspection-api/internal/application/surveys"
	"github.com/sitewalk/inspection-api/internal/domain/mail"
	"github.com/sitewalk/inspection-api/internal/domain/manual"
	domreports "github.com/sitewalk/inspection-api/internal/domain/reports"
	domsurvey "github.com/sitewalk/inspection-api/internal/domain/survey"
	"github.com/sitewalk/inspection-api/internal/domain/vision"
	"github.com/sitewalk/inspection-api/internal/i18n"
	"github.com/sitewalk/inspection-api/internal/infra/kv"
	"github.com/sitewalk/inspection-api/internal/middleware"
)

type Router struct {
	surveysSvc *appsurveys.Service
	reportsSvc *appreports.Service
	langs      *kv.LanguageStore
}

func NewRouter(surveysSvc *appsurveys.Service, reportsSvc *appreports.Service, langs *kv.LanguageStore, health http.HandlerFunc) http.Handler {
	r := &Router{surveysSvc: surveysSvc, reportsSvc: reportsSvc, langs: langs}
	mux := chi.NewRouter()

	if health == nil {
		health = func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("ok"))
		}
	}
	mux.Get("/health", health)
	mux.Get("/health/live", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/surveys", r.wrap(r.handleCreateSurvey))
		rt.Route("/surveys/{id}", func(s chi.Router) {
			s.Use(requireSessionID)
			s.Get("/", r.wrap(r.handleGetSurvey))
			s.Delete("/", r.wrap(r.handleDropSurvey))
			s.Post("/advance", r.wrap(r.handleAdvance))
			s.Post("/retreat", r.wrap(r.handleRetreat))
			s.Post("/analyze", r.wrap(r.handleAnalyze))
			s.Post("/submit", r.wrap(r.handleSubmitReport))

			s.Post("/questions/{qid}/images", r.wrap(r.handleAddImage))
			s.Put("/questions/{qid}/images", r.wrap(r.handleReplaceImages))
			s.Delete("/questions/{qid}/images/{index}", r.wrap(r.handleRemoveImage))
			s.Post("/questions/{qid}/answer", r.wrap(r.handleSetAnswer))
			s.Post("/questions/{qid}/complete", r.wrap(r.handleMarkCompleted))

			s.Get("/manual", r.wrap(r.handleLoadManual))
			s.Post("/manual/submit", r.wrap(r.handleSubmitManual))
			s.Post("/manual/{qid}", r.wrap(r.handleAnswerManual))
		})

		rt.Get("/reports", r.wrap(r.handleListReports))
		rt.Get("/reports/summary", r.wrap(r.handleSummary))
		rt.Route("/reports/{id}", func(s chi.Router) {
			s.Use(requireReportID)
			s.Get("/", r.wrap(r.handleGetReport))
			s.Delete("/", r.wrap(r.handleDeleteReport))
			s.Post("/email", r.wrap(r.handleEmailReport))
			s.Post("/archive", r.wrap(r.handleArchiveReport))
		})

		rt.Get("/language", r.wrap(r.handleGetLanguage))
		rt.Put("/language", r.wrap(r.handleSetLanguage))
	})

	return mux
}

// requireSessionID rejects malformed session ids before any handler runs.
func requireSessionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if err := middleware.ValidateSessionID(chi.URLParam(req, "id")); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		next.ServeHTTP(w, req)
	})
}

// requireReportID rejects malformed report ids before any handler runs.
func requireReportID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if err := middleware.ValidateReportID(chi.URLParam(req, "id")); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		next.ServeHTTP(w, req)
	})
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// badRequest marks a validation error: rejected before any network or
// storage call, surfaced with the message as-is.
type badRequest struct{ msg string }

func (e badRequest) Error() string { return e.msg }

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		var br badRequest
		switch {
		case errors.As(err, &br):
			http.Error(w, br.msg, http.StatusBadRequest)
		case errors.Is(err, appsurveys.ErrSessionNotFound),
			errors.Is(err, domsurvey.ErrQuestionNotFound),
			errors.Is(err, manual.ErrQuestionNotFound),
			errors.Is(err, domreports.ErrNotFound),
			errors.Is(err, sql.ErrNoRows):
			http.Error(w, "not found", http.StatusNotFound)
		case errors.Is(err, domsurvey.ErrAnalysisInFlight),
			errors.Is(err, appsurveys.ErrNoQuestionnaire):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, vision.ErrQuotaExceeded):
			http.Error(w, "analysis quota exceeded", http.StatusTooManyRequests)
		case errors.Is(err, manual.ErrInvalidOption), errors.Is(err, mail.ErrInvalidAddress):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

func (r *Router) language() i18n.Language {
	lang, err := r.langs.Load()
	if err != nil {
		return i18n.DefaultLanguage
	}
	return lang
}

// POST /v1/surveys
// Body: {"language": "fi"}; optional, defaults to the stored preference.
func (r *Router) handleCreateSurvey(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Language string `json:"language"`
	}
	// empty body is fine
	_ = json.NewDecoder(req.Body).Decode(&body)

	lang := r.language()
	if body.Language != "" {
		if !i18n.Supported(body.Language) {
			return badRequest{fmt.Sprintf("unsupported language: %s", body.Language)}
		}
		lang = i18n.Parse(body.Language)
	}

	sess := r.surveysSvc.Create(lang)
	return writeJSON(w, sess)
}

// GET /v1/surveys/{id}
func (r *Router) handleGetSurvey(w http.ResponseWriter, req *http.Request) error {
	sess, err := r.surveysSvc.Get(chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	return writeJSON(w, sess)
}

// DELETE /v1/surveys/{id}
func (r *Router) handleDropSurvey(w http.ResponseWriter, req *http.Request) error {
	r.surveysSvc.Drop(chi.URLParam(req, "id"))
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// POST /v1/surveys/{id}/advance
func (r *Router) handleAdvance(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := r.surveysSvc.Advance(id); err != nil {
		return err
	}
	return r.handleGetSurvey(w, req)
}

// POST /v1/surveys/{id}/retreat
func (r *Router) handleRetreat(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := r.surveysSvc.Retreat(id); err != nil {
		return err
	}
	return r.handleGetSurvey(w, req)
}

// POST /v1/surveys/{id}/questions/{qid}/images
// Body: {"ref": "<device image uri>"}
func (r *Router) handleAddImage(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Ref string `json:"ref"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest{"invalid request body"}
	}
	if body.Ref == "" {
		return badRequest{"ref is required"}
	}
	if err := r.surveysSvc.AddImage(chi.URLParam(req, "id"), domsurvey.QuestionID(chi.URLParam(req, "qid")), body.Ref); err != nil {
		return err
	}
	return r.handleGetSurvey(w, req)
}

// PUT /v1/surveys/{id}/questions/{qid}/images
// Body: {"refs": ["...", ...]}
func (r *Router) handleReplaceImages(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Refs []string `json:"refs"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest{"invalid request body"}
	}
	if err := r.surveysSvc.ReplaceImages(chi.URLParam(req, "id"), domsurvey.QuestionID(chi.URLParam(req, "qid")), body.Refs); err != nil {
		return err
	}
	return r.handleGetSurvey(w, req)
}

// DELETE /v1/surveys/{id}/questions/{qid}/images/{index}
func (r *Router) handleRemoveImage(w http.ResponseWriter, req *http.Request) error {
	idx, err := strconv.Atoi(chi.URLParam(req, "index"))
	if err != nil {
		return badRequest{"invalid image index"}
	}
	if err := r.surveysSvc.RemoveImage(chi.URLParam(req, "id"), domsurvey.QuestionID(chi.URLParam(req, "qid")), idx); err != nil {
		return err
	}
	return r.handleGetSurvey(w, req)
}

// POST /v1/surveys/{id}/questions/{qid}/answer
// Body: {"text": "..."}
func (r *Router) handleSetAnswer(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest{"invalid request body"}
	}
	if err := r.surveysSvc.SetAnswer(chi.URLParam(req, "id"), domsurvey.QuestionID(chi.URLParam(req, "qid")), body.Text); err != nil {
		return err
	}
	return r.handleGetSurvey(w, req)
}

// POST /v1/surveys/{id}/questions/{qid}/complete
func (r *Router) handleMarkCompleted(w http.ResponseWriter, req *http.Request) error {
	if err := r.surveysSvc.MarkCompleted(chi.URLParam(req, "id"), domsurvey.QuestionID(chi.URLParam(req, "qid"))); err != nil {
		return err
	}
	return r.handleGetSurvey(w, req)
}

// POST /v1/surveys/{id}/analyze
// Body: {"images": ["<base64>", ...]}; the captured photos for the current
// question. A request without photos is rejected here or in the session
// guard before any provider call.
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Images []string `json:"images"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest{"invalid request body"}
	}
	if err := middleware.ValidateImageCount(len(body.Images)); err != nil {
		return badRequest{err.Error()}
	}

	photos := make([][]byte, 0, len(body.Images))
	for _, enc := range body.Images {
		raw, err := base64.StdEncoding.DecodeString(enc)
		if err != nil {
			return badRequest{"invalid base64 image payload"}
		}
		photos = append(photos, raw)
	}

	middleware.IncrementAnalyses()
	res, err := r.surveysSvc.Analyze(req.Context(), chi.URLParam(req, "id"), photos)
	if errors.Is(err, domsurvey.ErrNoImages) {
		middleware.IncrementAnalysesRejected()
		return badRequest{i18n.T(r.language(), i18n.KeyNoPhotos)}
	}
	if err != nil {
		return err
	}
	return writeJSON(w, res)
}

// GET /v1/surveys/{id}/manual?part=Corridor&area=Corridor
func (r *Router) handleLoadManual(w http.ResponseWriter, req *http.Request) error {
	part := req.URL.Query().Get("part")
	area := req.URL.Query().Get("area")
	if err := middleware.ValidateLabel(part, 64); err != nil {
		return badRequest{err.Error()}
	}
	if err := middleware.ValidateLabel(area, 64); err != nil {
		return badRequest{err.Error()}
	}
	qn, err := r.surveysSvc.LoadManual(chi.URLParam(req, "id"), part, area)
	if err != nil {
		return err
	}
	return writeJSON(w, qn)
}

// POST /v1/surveys/{id}/manual/{qid}
// Body: {"value": "yes"}
func (r *Router) handleAnswerManual(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest{"invalid request body"}
	}
	if err := r.surveysSvc.AnswerManual(chi.URLParam(req, "id"), manual.QuestionID(chi.URLParam(req, "qid")), body.Value); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// POST /v1/surveys/{id}/manual/submit
// 422 with the unanswered required question texts when validation fails.
func (r *Router) handleSubmitManual(w http.ResponseWriter, req *http.Request) error {
	answered, missing, err := r.surveysSvc.SubmitManual(chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		return json.NewEncoder(w).Encode(map[string]any{
			"message":    i18n.T(r.language(), i18n.KeyUnansweredRequired),
			"unanswered": missing,
		})
	}
	return writeJSON(w, map[string]any{"questions": answered})
}

// POST /v1/surveys/{id}/submit
// Body: {"scope": "...", "author": "...", "description": "..."}
func (r *Router) handleSubmitReport(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Scope       string `json:"scope"`
		Author      string `json:"author"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest{"invalid request body"}
	}
	if err := middleware.ValidateLabel(body.Scope, 128); err != nil {
		return badRequest{err.Error()}
	}
	if err := middleware.ValidateLabel(body.Author, 128); err != nil {
		return badRequest{err.Error()}
	}

	id := chi.URLParam(req, "id")
	surveyQs, manualQs, _, err := r.surveysSvc.Snapshot(id)
	if err != nil {
		return err
	}

	rep, err := r.reportsSvc.Submit(req.Context(), appreports.SubmitCommand{
		Scope:       middleware.SanitizeString(body.Scope),
		Author:      middleware.SanitizeString(body.Author),
		Description: middleware.SanitizeString(body.Description),
		Survey:      surveyQs,
		Manual:      manualQs,
	})
	if err != nil {
		return err
	}
	return writeJSON(w, rep)
}

// GET /v1/reports
func (r *Router) handleListReports(w http.ResponseWriter, req *http.Request) error {
	list, err := r.reportsSvc.List(req.Context())
	if err != nil {
		return err
	}
	if list == nil {
		list = []*domreports.Report{}
	}
	return writeJSON(w, list)
}

// GET /v1/reports/{id}
func (r *Router) handleGetReport(w http.ResponseWriter, req *http.Request) error {
	rep, err := r.reportsSvc.Get(req.Context(), domreports.ReportID(chi.URLParam(req, "id")))
	if err != nil {
		return err
	}
	return writeJSON(w, rep)
}

// DELETE /v1/reports/{id}
func (r *Router) handleDeleteReport(w http.ResponseWriter, req *http.Request) error {
	if err := r.reportsSvc.Delete(req.Context(), domreports.ReportID(chi.URLParam(req, "id"))); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// GET /v1/reports/summary
func (r *Router) handleSummary(w http.ResponseWriter, req *http.Request) error {
	summary, err := r.reportsSvc.Summary(req.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, summary)
}

// POST /v1/reports/{id}/email
// Body: {"recipient": "user@example.com"}
func (r *Router) handleEmailReport(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Recipient string `json:"recipient"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest{"invalid request body"}
	}

	lang := r.language()
	res, err := r.reportsSvc.EmailByID(req.Context(), domreports.ReportID(chi.URLParam(req, "id")), body.Recipient, lang)
	if errors.Is(err, mail.ErrInvalidAddress) {
		return badRequest{i18n.T(lang, i18n.KeyInvalidEmail)}
	}
	if err != nil {
		return err
	}
	if res.Success {
		middleware.IncrementEmailsSent()
	} else {
		middleware.IncrementEmailsFailed()
	}
	return writeJSON(w, res)
}

// POST /v1/reports/{id}/archive
func (r *Router) handleArchiveReport(w http.ResponseWriter, req *http.Request) error {
	url, err := r.reportsSvc.ArchiveReport(req.Context(), domreports.ReportID(chi.URLParam(req, "id")), r.language())
	if err != nil {
		return err
	}
	return writeJSON(w, map[string]string{"url": url})
}

// GET /v1/language
func (r *Router) handleGetLanguage(w http.ResponseWriter, req *http.Request) error {
	lang, err := r.langs.Load()
	if err != nil {
		return err
	}
	return writeJSON(w, map[string]string{"language": string(lang)})
}

// PUT /v1/language
// Body: {"language": "fi"}
func (r *Router) handleSetLanguage(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest{"invalid request body"}
	}
	if !i18n.Supported(body.Language) {
		return badRequest{fmt.Sprintf("unsupported language: %s", body.Language)}
	}
	if err := r.langs.Store(i18n.Parse(body.Language)); err != nil {
		return err
	}
	return writeJSON(w, map[string]string{"language": body.Language})
}
