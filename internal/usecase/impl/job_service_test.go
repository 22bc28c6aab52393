package impl

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"institute/internal/domain/entity"
	domainerrors "institute/internal/domain/errors"
	"institute/internal/domain/service"
	"institute/internal/pagination"
	"institute/internal/usecase"
)

func TestJobApply_DenormalizesTitleAndStoresResume(t *testing.T) {
	t.Parallel()

	jobs := new(mockJobRepo)
	apps := new(mockJobApplicationRepo)
	files := new(mockFileStore)

	job := &entity.Job{ID: uuid.New(), Title: "VLSI Engineer"}
	jobs.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	files.On("Save", mock.Anything, service.UploadJobResume, "resume.pdf", mock.Anything).
		Return("job-resume/abc.pdf", nil)
	apps.On("Create", mock.Anything, mock.MatchedBy(func(app *entity.JobApplication) bool {
		return app.JobTitle == "VLSI Engineer" &&
			app.ResumePath == "job-resume/abc.pdf" &&
			app.Status == entity.ApplicationPending
	})).Return(nil)

	svc := NewJobService(jobs, apps, files, testLogger())
	app, err := svc.Apply(t.Context(), job.ID, usecase.ApplyJobInput{
		Name:  "Ravi",
		Email: "Ravi@Example.com",
		Resume: &usecase.ResumeUpload{
			Filename: "resume.pdf",
			Content:  strings.NewReader("pdf-bytes"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "ravi@example.com", app.Email)
	assert.False(t, app.Date.IsZero())
	files.AssertExpectations(t)
	apps.AssertExpectations(t)
}

func TestJobApply_RequiresResume(t *testing.T) {
	t.Parallel()

	jobs := new(mockJobRepo)
	job := &entity.Job{ID: uuid.New(), Title: "Intern"}
	jobs.On("FindByID", mock.Anything, job.ID).Return(job, nil)

	svc := NewJobService(jobs, new(mockJobApplicationRepo), new(mockFileStore), testLogger())
	_, err := svc.Apply(t.Context(), job.ID, usecase.ApplyJobInput{Name: "Ravi", Email: "r@example.com"})

	require.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestJobApply_CleansUpResumeWhenCreateFails(t *testing.T) {
	t.Parallel()

	jobs := new(mockJobRepo)
	apps := new(mockJobApplicationRepo)
	files := new(mockFileStore)

	job := &entity.Job{ID: uuid.New(), Title: "Engineer"}
	jobs.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	files.On("Save", mock.Anything, service.UploadJobResume, "cv.pdf", mock.Anything).
		Return("job-resume/key.pdf", nil)
	apps.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))
	files.On("Delete", mock.Anything, "job-resume/key.pdf").Return(nil)

	svc := NewJobService(jobs, apps, files, testLogger())
	_, err := svc.Apply(t.Context(), job.ID, usecase.ApplyJobInput{
		Name:  "Ravi",
		Email: "r@example.com",
		Resume: &usecase.ResumeUpload{
			Filename: "cv.pdf",
			Content:  strings.NewReader("bytes"),
		},
	})

	require.Error(t, err)
	files.AssertCalled(t, "Delete", mock.Anything, "job-resume/key.pdf")
}

func TestDeleteApplication_RemovesStoredResume(t *testing.T) {
	t.Parallel()

	apps := new(mockJobApplicationRepo)
	files := new(mockFileStore)

	appID := uuid.New()
	apps.On("FindByID", mock.Anything, appID).Return(&entity.JobApplication{
		ID:         appID,
		ResumePath: "job-resume/old.pdf",
	}, nil)
	apps.On("Delete", mock.Anything, appID).Return(nil)
	files.On("Delete", mock.Anything, "job-resume/old.pdf").Return(nil)

	svc := NewJobService(new(mockJobRepo), apps, files, testLogger())
	require.NoError(t, svc.DeleteApplication(t.Context(), appID))
	files.AssertExpectations(t)
}

func TestUpdateApplicationStatus_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	svc := NewJobService(new(mockJobRepo), new(mockJobApplicationRepo), new(mockFileStore), testLogger())

	_, err := svc.UpdateApplicationStatus(t.Context(), uuid.New(), entity.ApplicationStatus("Shortlisted"))
	require.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestJobList_BuildsPaginationEnvelope(t *testing.T) {
	t.Parallel()

	jobs := new(mockJobRepo)
	jobs.On("List", mock.Anything, mock.MatchedBy(func(opts interface{}) bool { return true })).
		Return([]*entity.Job{{ID: uuid.New()}}, int64(25), nil)

	svc := NewJobService(jobs, new(mockJobApplicationRepo), new(mockFileStore), testLogger())
	list, page, err := svc.List(t.Context(), pagination.Options{Page: 2, PageSize: 10})

	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, int64(3), page.TotalPages)
}
