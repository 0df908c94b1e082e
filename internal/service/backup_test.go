package service

import (
	"testing"
	"time"

	"github.com/dealerbook/dealerbook/internal/backup"
	"github.com/dealerbook/dealerbook/internal/domain/client"
	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type BackupServiceSuite struct {
	testutil.BaseServiceTestSuite
	service *backupService
	target  backup.Target
}

func TestBackupService(t *testing.T) {
	suite.Run(t, new(BackupServiceSuite))
}

func (s *BackupServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	target, err := backup.NewTarget(s.GetConfig(), s.GetLogger())
	s.Require().NoError(err)
	s.target = target

	params := newTestParams(&s.BaseServiceTestSuite)
	params.BackupTarget = target
	s.service = &backupService{
		ServiceParams: params,
		now:           func() time.Time { return s.GetNow() },
	}
}

func (s *BackupServiceSuite) TestSnapshotAndRestore() {
	ctx := s.GetContext()
	clients := s.GetStores().ClientRepo

	id, err := clients.Save(ctx, &client.Client{FirstName: "Ana", Email: "ana@example.com"})
	s.Require().NoError(err)

	snapshot, err := s.service.Snapshot(ctx)
	s.Require().NoError(err)
	s.Equal(backup.NewSnapshotID(s.GetNow()), snapshot.ID)
	s.Equal([]string{"clients.xlsx"}, snapshot.Files, "missing record sets are skipped")

	s.Require().NoError(clients.Delete(ctx, id))
	_, err = clients.Get(ctx, id)
	s.Require().True(ierr.IsNotFound(err))

	restored, err := s.service.Restore(ctx, snapshot.ID)
	s.Require().NoError(err)
	s.Equal([]string{"clients.xlsx"}, restored.Restored)

	got, err := clients.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal("ana@example.com", got.Email)
}

func (s *BackupServiceSuite) TestRestore_Errors() {
	ctx := s.GetContext()

	_, err := s.service.Restore(ctx, "../outside")
	s.True(ierr.IsValidation(err))

	_, err = s.service.Restore(ctx, "20990101T000000.000000000Z")
	s.True(ierr.IsNotFound(err))

	s.Require().NoError(s.target.Put(ctx, "broken", "clients.xlsx", []byte("plain text")))
	_, err = s.service.Restore(ctx, "broken")
	s.True(ierr.IsValidation(err))
}

func (s *BackupServiceSuite) TestDisabled() {
	params := newTestParams(&s.BaseServiceTestSuite)
	service := NewBackupService(params)

	_, err := service.Snapshot(s.GetContext())
	s.True(ierr.IsInvalidOperation(err))

	_, err = service.Restore(s.GetContext(), "any")
	s.True(ierr.IsInvalidOperation(err))
}
