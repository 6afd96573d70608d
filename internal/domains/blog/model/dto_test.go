package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreate() CreateBlogRequest {
	return CreateBlogRequest{
		Title:   "Pancakes",
		Content: "Mix and fry.",
		Summary: "Fluffy pancakes.",
	}
}

func TestCreateBlogRequest_Valid(t *testing.T) {
	require.NoError(t, validCreate().Validate())
}

func TestCreateBlogRequest_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateBlogRequest)
	}{
		{"missing title", func(r *CreateBlogRequest) { r.Title = "" }},
		{"missing content", func(r *CreateBlogRequest) { r.Content = "" }},
		{"missing summary", func(r *CreateBlogRequest) { r.Summary = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestCreateBlogRequest_Limits(t *testing.T) {
	req := validCreate()
	req.Title = strings.Repeat("x", 201)
	assert.Error(t, req.Validate(), "title over 200 chars")

	req = validCreate()
	req.Title = strings.Repeat("x", 200)
	assert.NoError(t, req.Validate(), "title at exactly 200 chars")

	req = validCreate()
	req.Summary = strings.Repeat("x", 501)
	assert.Error(t, req.Validate(), "summary over 500 chars")
}

func TestCreateBlogRequest_Category(t *testing.T) {
	req := validCreate()
	req.Category = CategorySnack
	assert.NoError(t, req.Validate())

	req.Category = Category("Midnight")
	assert.Error(t, req.Validate())

	// Empty means "use the default", not invalid
	req.Category = ""
	assert.NoError(t, req.Validate())
}

func TestCreateBlogRequest_NumericFields(t *testing.T) {
	zero := 0
	one := 1

	req := validCreate()
	req.CookingTime = &zero
	assert.Error(t, req.Validate())

	req = validCreate()
	req.Servings = &zero
	assert.Error(t, req.Validate())

	req = validCreate()
	req.CookingTime = &one
	req.Servings = &one
	assert.NoError(t, req.Validate())
}

func TestUpdateBlogRequest_EmptyIsValid(t *testing.T) {
	// All fields absent: nothing to validate, nothing changes
	assert.NoError(t, UpdateBlogRequest{}.Validate())
}

func TestUpdateBlogRequest_ValidatesOnlyPresentFields(t *testing.T) {
	longTitle := strings.Repeat("x", 201)
	assert.Error(t, UpdateBlogRequest{Title: &longTitle}.Validate())

	badCategory := Category("Brunch")
	assert.Error(t, UpdateBlogRequest{Category: &badCategory}.Validate())

	goodCategory := CategoryBreakfast
	newTitle := "Better title"
	assert.NoError(t, UpdateBlogRequest{Title: &newTitle, Category: &goodCategory}.Validate())
}
