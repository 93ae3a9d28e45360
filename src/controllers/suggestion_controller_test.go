package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ece-vision/Backend-Vision-Hub/src/lib"
	"github.com/ece-vision/Backend-Vision-Hub/src/models"
)

func seedIdea(t *testing.T, ownerID uint) models.Idea {
	t.Helper()
	idea := models.Idea{
		Title:       "Line Follower",
		Description: "Competition robot",
		Status:      models.IdeaStatusApproved,
		UserID:      ownerID,
	}
	if err := lib.DB.Create(&idea).Error; err != nil {
		t.Fatalf("seed idea: %v", err)
	}
	return idea
}

func TestOwnerCannotSuggestOnOwnIdea(t *testing.T) {
	app := setupTestApp(t)
	owner, ownerToken := createTestUser(t, "owner", models.UserRoleStudent)
	idea := seedIdea(t, owner.ID)

	resp := doRequest(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/ideas/%d/suggestions", idea.ID), ownerToken,
		map[string]string{"content": "Use a PID controller"})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for owner suggestion, got %d", resp.StatusCode)
	}

	var rows int64
	if err := lib.DB.Model(&models.Suggestion{}).
		Where("idea_id = ?", idea.ID).Count(&rows).Error; err != nil {
		t.Fatalf("count suggestions: %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected no suggestion rows, got %d", rows)
	}
}

func TestCreateAndListSuggestions(t *testing.T) {
	app := setupTestApp(t)
	owner, _ := createTestUser(t, "owner", models.UserRoleStudent)
	helper, helperToken := createTestUser(t, "helper", models.UserRoleStudent)
	idea := seedIdea(t, owner.ID)

	resp := doRequest(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/ideas/%d/suggestions", idea.ID), helperToken,
		map[string]string{"content": "Add encoder feedback"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	resp = doRequest(t, app, http.MethodGet,
		fmt.Sprintf("/api/v1/ideas/%d/suggestions", idea.ID), helperToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var list []models.SuggestionDto
	decodeBody(t, resp, &list)
	if len(list) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(list))
	}
	if list[0].AuthorName != helper.FullName || list[0].Content != "Add encoder feedback" {
		t.Fatalf("unexpected suggestion payload: %+v", list[0])
	}
}

func TestSuggestionUpvoteToggles(t *testing.T) {
	app := setupTestApp(t)
	owner, _ := createTestUser(t, "owner", models.UserRoleStudent)
	helper, _ := createTestUser(t, "helper", models.UserRoleStudent)
	voter, voterToken := createTestUser(t, "voter", models.UserRoleStudent)
	idea := seedIdea(t, owner.ID)

	suggestion := models.Suggestion{IdeaID: idea.ID, UserID: helper.ID, Content: "Try mecanum wheels"}
	if err := lib.DB.Create(&suggestion).Error; err != nil {
		t.Fatalf("seed suggestion: %v", err)
	}

	path := fmt.Sprintf("/api/v1/suggestions/%d/upvote", suggestion.ID)

	var body struct {
		Upvoted bool  `json:"upvoted"`
		Upvotes int64 `json:"upvotes"`
	}

	resp := doRequest(t, app, http.MethodPost, path, voterToken, nil)
	decodeBody(t, resp, &body)
	if !body.Upvoted || body.Upvotes != 1 {
		t.Fatalf("expected upvoted=true count=1, got %+v", body)
	}

	resp = doRequest(t, app, http.MethodPost, path, voterToken, nil)
	decodeBody(t, resp, &body)
	if body.Upvoted || body.Upvotes != 0 {
		t.Fatalf("expected upvoted=false count=0 after toggle, got %+v", body)
	}

	// toggling back on must not trip the unique index
	resp = doRequest(t, app, http.MethodPost, path, voterToken, nil)
	decodeBody(t, resp, &body)
	if !body.Upvoted || body.Upvotes != 1 {
		t.Fatalf("expected re-upvote to succeed, got %+v", body)
	}

	// listing reports the upvoter's name and the caller's own state
	resp = doRequest(t, app, http.MethodGet,
		fmt.Sprintf("/api/v1/ideas/%d/suggestions", idea.ID), voterToken, nil)
	var list []models.SuggestionDto
	decodeBody(t, resp, &list)
	if len(list) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(list))
	}
	if !list[0].UpvotedByMe || list[0].Upvotes != 1 {
		t.Fatalf("expected upvoted_by_me with 1 upvote, got %+v", list[0])
	}
	if len(list[0].Upvoters) != 1 || list[0].Upvoters[0] != voter.FullName {
		t.Fatalf("expected upvoter %q, got %v", voter.FullName, list[0].Upvoters)
	}
}

func TestDeleteSuggestionAuthorOnly(t *testing.T) {
	app := setupTestApp(t)
	owner, _ := createTestUser(t, "owner", models.UserRoleStudent)
	helper, helperToken := createTestUser(t, "helper", models.UserRoleStudent)
	_, otherToken := createTestUser(t, "other", models.UserRoleStudent)
	voter, _ := createTestUser(t, "voter", models.UserRoleStudent)
	idea := seedIdea(t, owner.ID)

	suggestion := models.Suggestion{IdeaID: idea.ID, UserID: helper.ID, Content: "Swap the motor driver"}
	if err := lib.DB.Create(&suggestion).Error; err != nil {
		t.Fatalf("seed suggestion: %v", err)
	}
	upvote := models.SuggestionUpvote{SuggestionID: suggestion.ID, UserID: voter.ID}
	if err := lib.DB.Create(&upvote).Error; err != nil {
		t.Fatalf("seed upvote: %v", err)
	}

	path := fmt.Sprintf("/api/v1/suggestions/%d", suggestion.ID)

	resp := doRequest(t, app, http.MethodDelete, path, otherToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-author, got %d", resp.StatusCode)
	}

	resp = doRequest(t, app, http.MethodDelete, path, helperToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for author, got %d", resp.StatusCode)
	}

	var suggestionRows, upvoteRows int64
	lib.DB.Model(&models.Suggestion{}).Where("id = ?", suggestion.ID).Count(&suggestionRows)
	lib.DB.Model(&models.SuggestionUpvote{}).Where("suggestion_id = ?", suggestion.ID).Count(&upvoteRows)
	if suggestionRows != 0 || upvoteRows != 0 {
		t.Fatalf("expected suggestion and upvotes removed, got %d and %d", suggestionRows, upvoteRows)
	}
}
