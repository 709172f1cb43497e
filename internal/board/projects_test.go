package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RJD02/life-quest/internal/model"
)

func TestAddProjectDefaults(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)

	p := mustProject(t, s, "Website", f.ID)
	assert.Equal(t, model.ProjectActive, p.Status)
	assert.Equal(t, model.ProjectPriorityMedium, p.Priority)

	got, _ := s.Folder(f.ID)
	assert.Equal(t, 1, got.ProjectCount)
	assert.True(t, got.LastModified.After(f.LastModified))
}

func TestAddProjectValidation(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)

	_, err := s.AddProject(NewProject{Name: "", FolderID: f.ID})
	assert.True(t, IsValidation(err))

	_, err = s.AddProject(NewProject{Name: "X", FolderID: "nope"})
	assert.True(t, IsValidation(err))
}

func TestMoveProjectBetweenFolders(t *testing.T) {
	s := testStore()
	src := mustFolder(t, s, "Src", nil)
	dst := mustFolder(t, s, "Dst", nil)
	p := mustProject(t, s, "Website", src.ID)

	srcBefore, _ := s.Folder(src.ID)
	dstBefore, _ := s.Folder(dst.ID)

	require.NoError(t, s.UpdateProject(p.ID, ProjectPatch{FolderID: &dst.ID}))

	got, _ := s.Project(p.ID)
	assert.Equal(t, dst.ID, got.FolderID)

	srcAfter, _ := s.Folder(src.ID)
	dstAfter, _ := s.Folder(dst.ID)
	assert.Equal(t, 0, srcAfter.ProjectCount)
	assert.Equal(t, 1, dstAfter.ProjectCount)
	// both sides of the move count as recent activity
	assert.True(t, srcAfter.LastModified.After(srcBefore.LastModified))
	assert.True(t, dstAfter.LastModified.After(dstBefore.LastModified))
}

func TestUpdateProjectRejectedPatchLeavesNoTrace(t *testing.T) {
	s := testStore()
	src := mustFolder(t, s, "Src", nil)
	dst := mustFolder(t, s, "Dst", nil)
	p := mustProject(t, s, "Website", src.ID)

	// a valid folder move paired with an invalid rename must apply neither
	empty := ""
	err := s.UpdateProject(p.ID, ProjectPatch{FolderID: &dst.ID, Name: &empty})
	require.True(t, IsValidation(err))

	got, _ := s.Project(p.ID)
	assert.Equal(t, src.ID, got.FolderID)
	assert.Equal(t, "Website", got.Name)

	srcAfter, _ := s.Folder(src.ID)
	dstAfter, _ := s.Folder(dst.ID)
	assert.Equal(t, 1, srcAfter.ProjectCount)
	assert.Equal(t, 0, dstAfter.ProjectCount)
}

func TestUpdateProjectUnknownFolder(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)
	p := mustProject(t, s, "Website", f.ID)

	bad := "nope"
	err := s.UpdateProject(p.ID, ProjectPatch{FolderID: &bad})
	assert.True(t, IsValidation(err))

	assert.ErrorIs(t, s.UpdateProject("nope", ProjectPatch{}), ErrNotFound)
}

func TestBumpProjectLastModified(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)
	p := mustProject(t, s, "Website", f.ID)

	require.NoError(t, s.BumpProjectLastModified(p.ID))

	proj, _ := s.Project(p.ID)
	folder, _ := s.Folder(f.ID)
	assert.True(t, proj.LastModified.After(p.LastModified))
	// the bump chains upward to the folder
	assert.Equal(t, proj.LastModified, folder.LastModified)

	assert.ErrorIs(t, s.BumpProjectLastModified("nope"), ErrNotFound)
}

func TestDeleteProjectCascades(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)
	p := mustProject(t, s, "Website", f.ID)
	l := mustList(t, s, "Todo", p.ID)
	task := mustTask(t, s, "Ship it", l.ID)
	_, err := s.AddComment(NewComment{TaskID: task.ID, AuthorName: "dev", Content: "soon"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteProject(p.ID))

	_, ok := s.Project(p.ID)
	assert.False(t, ok)
	assert.Empty(t, s.TaskListsByProject(p.ID))
	_, ok = s.Task(task.ID)
	assert.False(t, ok)
	assert.Empty(t, s.CommentsForTask(task.ID))

	got, _ := s.Folder(f.ID)
	assert.Equal(t, 0, got.ProjectCount)
}
