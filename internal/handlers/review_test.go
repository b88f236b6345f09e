// internal/handlers/review_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/troveworks/trove-backend/internal/models"
	"github.com/troveworks/trove-backend/internal/services"
)

type stubGadgetFinder struct {
	gadgets []models.Gadget
}

func (s *stubGadgetFinder) ListAll() ([]models.Gadget, error) {
	return s.gadgets, nil
}

type ReviewHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	repo    *stubSubmissionRepo
	finder  *stubGadgetFinder
	pending *models.Submission
}

func (suite *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.pending = &models.Submission{
		SourceURL: "https://www.gsmarena.com/acme_phone_x1-12345.php",
		Title:     "Acme Phone X1",
		Category:  "Phones",
		ImageURLs: []string{"https://assets.example.com/images/1-aaaaaa.jpg"},
		Status:    models.SubmissionStatusPending,
		AddedBy:   uuid.New(),
	}
	suite.pending.ID = uuid.New()

	suite.repo = &stubSubmissionRepo{subs: []*models.Submission{suite.pending}}
	suite.finder = &stubGadgetFinder{}

	handler := NewReviewHandler(services.NewReviewService(suite.repo, suite.finder))

	suite.router = gin.New()
	review := suite.router.Group("/review", fakeAuth(uuid.New()))
	{
		review.GET("", handler.GetQueue)
		review.GET("/orphans", handler.GetOrphans)
		review.PUT("/:id/approve", handler.Approve)
		review.DELETE("/:id", handler.Delete)
	}
}

func (suite *ReviewHandlerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		jsonData, _ := json.Marshal(body)
		buf = bytes.NewBuffer(jsonData)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReviewHandlerTestSuite) TestGetQueue() {
	w := suite.request("GET", "/review", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)

	data := response["data"].([]interface{})
	assert.Len(suite.T(), data, 1)

	entry := data[0].(map[string]interface{})
	assert.Equal(suite.T(), "Acme Phone X1", entry["title"])
	assert.Equal(suite.T(), "pending", entry["status"])
}

func (suite *ReviewHandlerTestSuite) TestGetQueueHidesApprovedByDefault() {
	suite.pending.Status = models.SubmissionStatusApproved

	w := suite.request("GET", "/review", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), response["data"])

	// ?status=all surfaces the audit trail.
	w = suite.request("GET", "/review?status=all", nil)
	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response["data"].([]interface{}), 1)
}

func (suite *ReviewHandlerTestSuite) TestApprove() {
	w := suite.request("PUT", "/review/"+suite.pending.ID.String()+"/approve", map[string]interface{}{
		"short_review": "Great value flagship",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), "Acme Phone X1", data["title"])
	assert.Equal(suite.T(), "Great value flagship", data["short_review"])
	assert.Equal(suite.T(), suite.pending.AddedBy.String(), data["created_by"])
	assert.Equal(suite.T(), "https://assets.example.com/images/1-aaaaaa.jpg", data["image_url"])

	assert.Equal(suite.T(), models.SubmissionStatusApproved, suite.repo.subs[0].Status)
}

func (suite *ReviewHandlerTestSuite) TestApproveTwiceConflicts() {
	path := "/review/" + suite.pending.ID.String() + "/approve"

	w := suite.request("PUT", path, map[string]interface{}{})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	w = suite.request("PUT", path, map[string]interface{}{})
	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ReviewHandlerTestSuite) TestApproveUnknownID() {
	w := suite.request("PUT", "/review/"+uuid.NewString()+"/approve", map[string]interface{}{})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ReviewHandlerTestSuite) TestApproveMalformedID() {
	w := suite.request("PUT", "/review/not-a-uuid/approve", map[string]interface{}{})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ReviewHandlerTestSuite) TestDelete() {
	w := suite.request("DELETE", "/review/"+suite.pending.ID.String(), nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Empty(suite.T(), suite.repo.subs)

	w = suite.request("DELETE", "/review/"+suite.pending.ID.String(), nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ReviewHandlerTestSuite) TestGetOrphans() {
	gadget := models.Gadget{Title: "Acme Phone X1"}
	gadget.ID = uuid.New()
	suite.finder.gadgets = []models.Gadget{gadget}

	w := suite.request("GET", "/review/orphans", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)

	data := response["data"].([]interface{})
	assert.Len(suite.T(), data, 1)

	entry := data[0].(map[string]interface{})
	assert.Equal(suite.T(), suite.pending.ID.String(), entry["submission_id"])
	assert.Equal(suite.T(), gadget.ID.String(), entry["gadget_id"])
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}
