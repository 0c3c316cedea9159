package referrals

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/axelse03-gif/reybanpac/migrations"
	"github.com/axelse03-gif/reybanpac/seed"
	"github.com/axelse03-gif/reybanpac/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := utils.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, migrations.MigrateAll(db))
	require.NoError(t, seed.SeedReferrals(db, zap.NewNop()))

	r := gin.New()
	RegisterReferralsRoutes(r, &Handler{DB: db, Logger: zap.NewNop()})
	return r
}

func do(r http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func postJSON(path string, payload any) *http.Request {
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func referralNames(t *testing.T, body map[string]any) []string {
	t.Helper()
	list, ok := body["referrals"].([]any)
	require.True(t, ok, "referrals missing: %v", body)

	names := make([]string, 0, len(list))
	for _, item := range list {
		names = append(names, item.(map[string]any)["name"].(string))
	}
	return names
}

func TestGetReferrals_Facets(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Carlos López", "Jonathan Alcaraz", "Axel Serrudo", "Rocio Barrios Paez", "Maximiliano Loza"}},
		{"?status=Todos", []string{"Carlos López", "Jonathan Alcaraz", "Axel Serrudo", "Rocio Barrios Paez", "Maximiliano Loza"}},
		{"?status=Activo", []string{"Jonathan Alcaraz", "Axel Serrudo"}},
		{"?status=Pending", []string{"Carlos López"}},
		{"?status=Avanzados", []string{"Rocio Barrios Paez", "Maximiliano Loza"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w, body := do(r, httptest.NewRequest(http.MethodGet, "/referrals"+tt.query, nil))
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, referralNames(t, body))
		})
	}
}

func TestGetReferrals_ActiveStep(t *testing.T) {
	r := newRouter(t)

	_, body := do(r, httptest.NewRequest(http.MethodGet, "/referrals", nil))
	var steps []float64
	for _, item := range body["referrals"].([]any) {
		steps = append(steps, item.(map[string]any)["activeStep"].(float64))
	}
	assert.Equal(t, []float64{0, 2, 2, 3, 3}, steps)
}

func TestGetReferrals_UnknownFacet(t *testing.T) {
	r := newRouter(t)

	w, body := do(r, httptest.NewRequest(http.MethodGet, "/referrals?status=Contratado", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "Contratado")
}

func TestGetReferral(t *testing.T) {
	r := newRouter(t)

	w, body := do(r, httptest.NewRequest(http.MethodGet, "/referrals/3", nil))
	require.Equal(t, http.StatusOK, w.Code)

	referral := body["referral"].(map[string]any)
	assert.Equal(t, "Axel Serrudo", referral["name"])
	assert.Equal(t, "Contratado el 15/06/2024", referral["hireDate"])
	assert.EqualValues(t, 2, referral["activeStep"])

	goal := body["goal"].(map[string]any)
	assert.Equal(t, "Meta Reybancash", goal["title"])
	assert.EqualValues(t, 75, goal["progress"])
	assert.Equal(t, "Contratación", goal["from"])
	assert.Equal(t, "1 año", goal["to"])

	activity := body["recentActivity"].([]any)
	require.Len(t, activity, 2)
	assert.Equal(t, "Buen Trabajo", activity[0].(map[string]any)["title"])
	assert.Equal(t, "Alerta de Seguridad", activity[1].(map[string]any)["title"])

	badges := body["achievements"].([]any)
	require.Len(t, badges, 3)
	assert.Equal(t, "locked", badges[2].(map[string]any)["tier"])
}

func TestGetReferral_NotFound(t *testing.T) {
	r := newRouter(t)

	for _, path := range []string{"/referrals/99", "/referrals/abc", "/referrals/-1", "/referrals/0"} {
		t.Run(path, func(t *testing.T) {
			w, body := do(r, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "Referido no encontrado.", body["error"])
			assert.Equal(t, "/referrals", body["returnTo"])
		})
	}
}

func TestValidateReferral(t *testing.T) {
	r := newRouter(t)

	w, body := do(r, postJSON("/referrals/validate", map[string]string{
		"fullName": "Jo",
		"position": "Operario",
		"phone":    "123",
	}))
	require.Equal(t, http.StatusOK, w.Code)

	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "fullName")
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "recommendationReason")
	assert.NotContains(t, errs, "position")
	assert.Equal(t, false, body["submitEnabled"])
}

func TestSubmitReferral(t *testing.T) {
	r := newRouter(t)

	valid := map[string]string{
		"fullName":             "Jon Smith",
		"position":             "Supervisor de Campo",
		"phone":                "+593998765432",
		"email":                "jon.smith@email.com",
		"relationshipType":     "Colega",
		"recommendationReason": "Conoce muy bien las fincas.",
	}

	w, body := do(r, postJSON("/referrals", valid))
	require.Equal(t, http.StatusOK, w.Code, body)
	assert.Equal(t, "/referrals/confirmation", body["next"])

	invalid := map[string]string{"fullName": "Jon Smith"}
	w, body = do(r, postJSON("/referrals", invalid))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, false, body["submitEnabled"])

	// Submitting never adds records.
	_, list := do(r, httptest.NewRequest(http.MethodGet, "/referrals", nil))
	assert.Len(t, referralNames(t, list), 5)
}

func TestSubmitReferral_UnlistedSelectValues(t *testing.T) {
	r := newRouter(t)

	w, body := do(r, postJSON("/referrals", map[string]string{
		"fullName":             "Jon Smith",
		"position":             "Supervisor de Campo",
		"relationshipType":     "Jefe directo",
		"acquaintanceTime":     "10 años",
		"recommendationReason": "Conoce muy bien las fincas.",
	}))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	errs := body["errors"].(map[string]any)
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "relationshipType")
	assert.Contains(t, errs, "acquaintanceTime")
}

func TestSubmitReferral_MultipartWithCV(t *testing.T) {
	r := newRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range map[string]string{
		"fullName":             "Ana Torres",
		"position":             "Analista",
		"recommendationReason": "Muy organizada.",
	} {
		require.NoError(t, mw.WriteField(k, v))
	}
	part, err := mw.CreateFormFile("cv", "ana-torres.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/referrals", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w, body := do(r, req)
	require.Equal(t, http.StatusOK, w.Code, body)
	assert.Equal(t, "ana-torres.pdf", body["attachedFile"])
}

func TestGetFormOptions(t *testing.T) {
	r := newRouter(t)

	w, body := do(r, httptest.NewRequest(http.MethodGet, "/referrals/new", nil))
	require.Equal(t, http.StatusOK, w.Code)

	form := body["form"].(map[string]any)
	assert.Equal(t, "Otra relación", form["relationshipType"])
	assert.Len(t, body["relationshipTypes"], 4)
}

func TestGetConfirmation(t *testing.T) {
	r := newRouter(t)

	w, body := do(r, httptest.NewRequest(http.MethodGet, "/referrals/confirmation", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "¡Referido enviado con éxito!", body["title"])
}
