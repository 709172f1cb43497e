package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RJD02/life-quest/internal/model"
)

func TestAddComment(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)
	p := mustProject(t, s, "Website", f.ID)
	l := mustList(t, s, "Todo", p.ID)
	task := mustTask(t, s, "Ship it", l.ID)
	projBefore, _ := s.Project(p.ID)

	c, err := s.AddComment(NewComment{TaskID: task.ID, AuthorID: "u1", AuthorName: "Dev", Content: "looks good"})
	require.NoError(t, err)
	assert.Equal(t, "Dev", c.AuthorName)

	// commenting counts as project activity
	projAfter, _ := s.Project(p.ID)
	assert.True(t, projAfter.LastModified.After(projBefore.LastModified))

	// but never touches the task itself
	got, _ := s.Task(task.ID)
	assert.Equal(t, task.UpdatedAt, got.UpdatedAt)

	e := s.Activity(1)[0]
	assert.Equal(t, model.ActionCommented, e.Action)
	assert.Equal(t, task.ID, e.EntityID)
	assert.Equal(t, c.ID, e.Metadata["commentId"])
}

func TestAddCommentValidation(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)
	p := mustProject(t, s, "Website", f.ID)
	l := mustList(t, s, "Todo", p.ID)
	task := mustTask(t, s, "Ship it", l.ID)

	_, err := s.AddComment(NewComment{TaskID: task.ID, Content: "   "})
	assert.True(t, IsValidation(err))

	_, err = s.AddComment(NewComment{TaskID: "nope", Content: "hi"})
	assert.True(t, IsValidation(err))
}

func TestUpdateAndDeleteComment(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)
	p := mustProject(t, s, "Website", f.ID)
	l := mustList(t, s, "Todo", p.ID)
	task := mustTask(t, s, "Ship it", l.ID)
	c, err := s.AddComment(NewComment{TaskID: task.ID, AuthorName: "Dev", Content: "v1"})
	require.NoError(t, err)

	require.NoError(t, s.UpdateComment(c.ID, "v2"))
	comments := s.CommentsForTask(task.ID)
	require.Len(t, comments, 1)
	assert.Equal(t, "v2", comments[0].Content)
	assert.True(t, comments[0].UpdatedAt.After(c.UpdatedAt))

	require.NoError(t, s.DeleteComment(c.ID))
	assert.Empty(t, s.CommentsForTask(task.ID))

	assert.ErrorIs(t, s.UpdateComment(c.ID, "v3"), ErrNotFound)
	assert.ErrorIs(t, s.DeleteComment(c.ID), ErrNotFound)
}

func TestCommentsOrderedOldestFirst(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)
	p := mustProject(t, s, "Website", f.ID)
	l := mustList(t, s, "Todo", p.ID)
	task := mustTask(t, s, "Ship it", l.ID)

	first, _ := s.AddComment(NewComment{TaskID: task.ID, AuthorName: "a", Content: "one"})
	second, _ := s.AddComment(NewComment{TaskID: task.ID, AuthorName: "b", Content: "two"})

	comments := s.CommentsForTask(task.ID)
	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, second.ID, comments[1].ID)
}
