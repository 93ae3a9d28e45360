package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ece-vision/Backend-Vision-Hub/src/lib"
	"github.com/ece-vision/Backend-Vision-Hub/src/models"
)

func TestCreateIdeaStartsPending(t *testing.T) {
	app := setupTestApp(t)
	_, token := createTestUser(t, "author", models.UserRoleStudent)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/ideas/", token, map[string]interface{}{
		"title":       "Smart Irrigation",
		"description": "Soil-moisture driven irrigation controller",
		"category":    "IoT",
		"skills":      []string{"Embedded C", "LoRa"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var dto models.IdeaDto
	decodeBody(t, resp, &dto)
	if dto.Status != models.IdeaStatusPending {
		t.Fatalf("expected pending status, got %q", dto.Status)
	}
	if dto.Upvotes != 0 || dto.Views != 0 {
		t.Fatalf("expected zeroed counters, got upvotes=%d views=%d", dto.Upvotes, dto.Views)
	}
}

func TestCreateIdeaRequiresTitleAndDescription(t *testing.T) {
	app := setupTestApp(t)
	_, token := createTestUser(t, "author", models.UserRoleStudent)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/ideas/", token, map[string]interface{}{
		"title": "No description",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUpvoteIdeaIsIdempotent(t *testing.T) {
	app := setupTestApp(t)
	owner, _ := createTestUser(t, "owner", models.UserRoleStudent)
	_, voterToken := createTestUser(t, "voter", models.UserRoleStudent)

	idea := models.Idea{
		Title:       "PCB Router",
		Description: "Autorouting tool",
		Status:      models.IdeaStatusApproved,
		Upvotes:     5,
		UserID:      owner.ID,
	}
	if err := lib.DB.Create(&idea).Error; err != nil {
		t.Fatalf("seed idea: %v", err)
	}

	path := fmt.Sprintf("/api/v1/ideas/%d/upvote", idea.ID)

	resp := doRequest(t, app, http.MethodPost, path, voterToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on first upvote, got %d", resp.StatusCode)
	}

	var reloaded models.Idea
	if err := lib.DB.First(&reloaded, idea.ID).Error; err != nil {
		t.Fatalf("reload idea: %v", err)
	}
	if reloaded.Upvotes != 6 {
		t.Fatalf("expected 6 upvotes after first vote, got %d", reloaded.Upvotes)
	}

	// second call is a no-op, counter and row count stay put
	resp = doRequest(t, app, http.MethodPost, path, voterToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on repeat upvote, got %d", resp.StatusCode)
	}
	if err := lib.DB.First(&reloaded, idea.ID).Error; err != nil {
		t.Fatalf("reload idea: %v", err)
	}
	if reloaded.Upvotes != 6 {
		t.Fatalf("expected upvotes to stay 6, got %d", reloaded.Upvotes)
	}

	var rows int64
	if err := lib.DB.Model(&models.Upvote{}).
		Where("idea_id = ?", idea.ID).Count(&rows).Error; err != nil {
		t.Fatalf("count upvote rows: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected exactly one upvote row, got %d", rows)
	}
}

func TestUpdateIdeaOwnerOnly(t *testing.T) {
	app := setupTestApp(t)
	owner, ownerToken := createTestUser(t, "owner", models.UserRoleStudent)
	_, otherToken := createTestUser(t, "other", models.UserRoleStudent)

	idea := models.Idea{Title: "Original", Description: "Before edit", UserID: owner.ID}
	if err := lib.DB.Create(&idea).Error; err != nil {
		t.Fatalf("seed idea: %v", err)
	}

	path := fmt.Sprintf("/api/v1/ideas/%d", idea.ID)
	payload := map[string]interface{}{
		"title":       "Edited",
		"description": "After edit",
	}

	resp := doRequest(t, app, http.MethodPut, path, otherToken, payload)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", resp.StatusCode)
	}

	resp = doRequest(t, app, http.MethodPut, path, ownerToken, payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for owner, got %d", resp.StatusCode)
	}

	var reloaded models.Idea
	if err := lib.DB.First(&reloaded, idea.ID).Error; err != nil {
		t.Fatalf("reload idea: %v", err)
	}
	if reloaded.Title != "Edited" {
		t.Fatalf("expected title updated, got %q", reloaded.Title)
	}
}

func TestGetIdeasFilters(t *testing.T) {
	app := setupTestApp(t)
	owner, token := createTestUser(t, "owner", models.UserRoleStudent)

	seed := []models.Idea{
		{Title: "Drone Swarm", Description: "Coordinated UAVs", Category: "Robotics",
			Skills: []string{"ROS", "Python"}, UserID: owner.ID},
		{Title: "Spectrum Analyzer", Description: "Cheap RF analyzer", Category: "RF",
			Skills: []string{"VHDL"}, UserID: owner.ID},
		{Title: "Attendance App", Description: "Face recognition attendance", Category: "Software",
			Skills: []string{"Python", "OpenCV"}, UserID: owner.ID},
	}
	for i := range seed {
		if err := lib.DB.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed idea: %v", err)
		}
	}

	var results []models.IdeaDto

	resp := doRequest(t, app, http.MethodGet, "/api/v1/ideas/?search=analyzer", token, nil)
	decodeBody(t, resp, &results)
	if len(results) != 1 || results[0].Title != "Spectrum Analyzer" {
		t.Fatalf("search filter failed: %v", results)
	}

	// category also matches skills membership
	resp = doRequest(t, app, http.MethodGet, "/api/v1/ideas/?category=Python", token, nil)
	results = nil
	decodeBody(t, resp, &results)
	if len(results) != 2 {
		t.Fatalf("expected 2 Python matches, got %d", len(results))
	}

	resp = doRequest(t, app, http.MethodGet, "/api/v1/ideas/?category=all", token, nil)
	results = nil
	decodeBody(t, resp, &results)
	if len(results) != 3 {
		t.Fatalf("expected all 3 ideas for category=all, got %d", len(results))
	}
}

func TestGetFeaturedIdeasOnlyApprovedAndFeatured(t *testing.T) {
	app := setupTestApp(t)
	owner, token := createTestUser(t, "owner", models.UserRoleStudent)

	seed := []models.Idea{
		{Title: "Featured Approved", Description: "d", Status: models.IdeaStatusApproved,
			IsFeatured: true, UserID: owner.ID},
		{Title: "Featured Pending", Description: "d", Status: models.IdeaStatusPending,
			IsFeatured: true, UserID: owner.ID},
		{Title: "Plain Approved", Description: "d", Status: models.IdeaStatusApproved,
			UserID: owner.ID},
	}
	for i := range seed {
		if err := lib.DB.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed idea: %v", err)
		}
	}

	resp := doRequest(t, app, http.MethodGet, "/api/v1/ideas/featured", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var results []models.IdeaDto
	decodeBody(t, resp, &results)
	if len(results) != 1 || results[0].Title != "Featured Approved" {
		t.Fatalf("expected only the featured approved idea, got %v", results)
	}
}

func TestGetIdeaByIDCountsView(t *testing.T) {
	app := setupTestApp(t)
	owner, token := createTestUser(t, "owner", models.UserRoleStudent)

	idea := models.Idea{Title: "Viewed", Description: "d", UserID: owner.ID}
	if err := lib.DB.Create(&idea).Error; err != nil {
		t.Fatalf("seed idea: %v", err)
	}

	path := fmt.Sprintf("/api/v1/ideas/%d", idea.ID)

	resp := doRequest(t, app, http.MethodGet, path, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var dto models.IdeaDto
	decodeBody(t, resp, &dto)
	if dto.Views != 1 {
		t.Fatalf("expected 1 view in response, got %d", dto.Views)
	}
	if dto.AuthorName != owner.FullName {
		t.Fatalf("expected author name %q, got %q", owner.FullName, dto.AuthorName)
	}

	var reloaded models.Idea
	if err := lib.DB.First(&reloaded, idea.ID).Error; err != nil {
		t.Fatalf("reload idea: %v", err)
	}
	if reloaded.Views != 1 {
		t.Fatalf("expected stored views 1, got %d", reloaded.Views)
	}
}

func TestGetIdeaByIDNotFound(t *testing.T) {
	app := setupTestApp(t)
	_, token := createTestUser(t, "reader", models.UserRoleStudent)

	resp := doRequest(t, app, http.MethodGet, "/api/v1/ideas/9999", token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
