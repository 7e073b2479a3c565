package forms

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostFormToInput(t *testing.T) {
	f := PostForm{
		Title:       "t",
		Text:        "x",
		PubDate:     "2026-03-01T09:30",
		IsPublished: true,
		CategoryID:  "cat-1",
	}
	in, errs := f.ToInput()
	require.Nil(t, errs)
	assert.Equal(t, 2026, in.PubDate.Year())
	assert.Equal(t, time.March, in.PubDate.Month())
	require.NotNil(t, in.CategoryID)
	assert.Equal(t, "cat-1", *in.CategoryID)
	assert.Nil(t, in.LocationID)
}

func TestPostFormBadDate(t *testing.T) {
	f := PostForm{Title: "t", Text: "x", PubDate: "yesterday-ish"}
	_, errs := f.ToInput()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "pub_date")
}

func TestPostFormRoundTrip(t *testing.T) {
	cat := "cat-1"
	at := time.Date(2026, 5, 2, 18, 0, 0, 0, time.Local)
	f := FromPost("t", "x", at, false, &cat, nil)
	in, errs := f.ToInput()
	require.Nil(t, errs)
	assert.True(t, in.PubDate.Equal(at))
	assert.False(t, in.IsPublished)
}

func TestUsernameValidator(t *testing.T) {
	require.NoError(t, RegisterValidators())

	ok := ProfileForm{Username: "jane_doe.42"}
	assert.NoError(t, binding.Validator.ValidateStruct(&ok))

	bad := ProfileForm{Username: "no spaces allowed"}
	err := binding.Validator.ValidateStruct(&bad)
	require.Error(t, err)
	assert.Contains(t, Errors(err), "username")
}

func TestCommentFormRejectsBlankText(t *testing.T) {
	require.NoError(t, RegisterValidators())

	for _, text := range []string{"", "   ", " \t\n "} {
		f := CommentForm{Text: text}
		err := binding.Validator.ValidateStruct(&f)
		require.Error(t, err, "text %q", text)
		assert.Equal(t, "this field is required", Errors(err)["text"])
	}

	ok := CommentForm{Text: " still a comment "}
	assert.NoError(t, binding.Validator.ValidateStruct(&ok))
}
