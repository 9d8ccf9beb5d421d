// internals/features/leads/controller/lead_controller_test.go
package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	leadModel "edcrm_backend/internals/features/leads/model"
)

func setupLeadApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&leadModel.LeadModel{}))

	ctrl := NewLeadController(db)
	app := fiber.New()
	leads := app.Group("/leads")
	leads.Get("/stats", ctrl.Stats)
	leads.Get("/", ctrl.List)
	leads.Post("/", ctrl.Create)
	leads.Get("/:id", ctrl.Detail)
	leads.Patch("/:id/update-status", ctrl.UpdateStatus)
	leads.Delete("/:id", ctrl.Delete)
	return app, db
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp, env
}

func TestCreateLead(t *testing.T) {
	app, db := setupLeadApp(t)

	resp, env := doJSON(t, app, "POST", "/leads/",
		`{"name":"  Ivan Petrov  ","phone":"+998901234567","course":"Frontend"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, env.Success)

	var lead leadModel.LeadModel
	require.NoError(t, db.First(&lead).Error)
	assert.Equal(t, "Ivan Petrov", lead.LeadName)
	assert.Equal(t, leadModel.LeadNew, lead.LeadStatus)
}

func TestCreateLeadValidation(t *testing.T) {
	app, _ := setupLeadApp(t)

	resp, env := doJSON(t, app, "POST", "/leads/", `{"name":"No Phone"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, env.Success)

	resp, _ = doJSON(t, app, "POST", "/leads/", `{"name":"Bad Mail","phone":"1","email":"nope"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestListLeadsFilters(t *testing.T) {
	app, db := setupLeadApp(t)
	seed := []leadModel.LeadModel{
		{LeadName: "Anna", LeadPhone: "111", LeadStatus: leadModel.LeadNew},
		{LeadName: "Boris", LeadPhone: "222", LeadStatus: leadModel.LeadInProgress},
		{LeadName: "Anvar", LeadPhone: "333", LeadStatus: leadModel.LeadRegistered},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	resp, env := doJSON(t, app, "GET", "/leads/?status=in_progress", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var leads []leadModel.LeadModel
	require.NoError(t, json.Unmarshal(env.Data, &leads))
	require.Len(t, leads, 1)
	assert.Equal(t, "Boris", leads[0].LeadName)

	_, env = doJSON(t, app, "GET", "/leads/?search=an", "")
	require.NoError(t, json.Unmarshal(env.Data, &leads))
	assert.Len(t, leads, 2)

	resp, _ = doJSON(t, app, "GET", "/leads/?status=bogus", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLeadStats(t *testing.T) {
	app, db := setupLeadApp(t)
	for _, s := range []leadModel.LeadStatus{leadModel.LeadNew, leadModel.LeadNew, leadModel.LeadRejected} {
		require.NoError(t, db.Create(&leadModel.LeadModel{
			LeadName: "x", LeadPhone: "1", LeadStatus: s,
		}).Error)
	}

	resp, env := doJSON(t, app, "GET", "/leads/stats", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stats struct {
		ByStatus map[string]int64 `json:"by_status"`
		Total    int64            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.EqualValues(t, 3, stats.Total)
	assert.EqualValues(t, 2, stats.ByStatus["new"])
	assert.EqualValues(t, 1, stats.ByStatus["rejected"])
	assert.EqualValues(t, 0, stats.ByStatus["in_progress"])
}

func TestUpdateLeadStatus(t *testing.T) {
	app, db := setupLeadApp(t)
	lead := leadModel.LeadModel{LeadName: "Anna", LeadPhone: "111"}
	require.NoError(t, db.Create(&lead).Error)

	resp, _ := doJSON(t, app, "PATCH", "/leads/"+lead.LeadID.String()+"/update-status",
		`{"status":"registered"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got leadModel.LeadModel
	require.NoError(t, db.First(&got, "lead_id = ?", lead.LeadID).Error)
	assert.Equal(t, leadModel.LeadRegistered, got.LeadStatus)

	resp, _ = doJSON(t, app, "PATCH", "/leads/"+lead.LeadID.String()+"/update-status",
		`{"status":"archived"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestDeleteLeadSoft(t *testing.T) {
	app, db := setupLeadApp(t)
	lead := leadModel.LeadModel{LeadName: "Anna", LeadPhone: "111"}
	require.NoError(t, db.Create(&lead).Error)

	resp, _ := doJSON(t, app, "DELETE", "/leads/"+lead.LeadID.String(), "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// gone from default queries, still present unscoped
	err := db.First(&leadModel.LeadModel{}, "lead_id = ?", lead.LeadID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, db.Unscoped().First(&leadModel.LeadModel{}, "lead_id = ?", lead.LeadID).Error)

	resp, _ = doJSON(t, app, "DELETE", "/leads/"+lead.LeadID.String(), "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
