package services

import (
	"sync"
	"testing"
	"time"

	"github.com/libreshelf/library-backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMailer struct {
	mu         sync.Mutex
	messages   []string
	recipients [][]string
}

func (m *fakeMailer) SendMails(message string, recipients []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, message)
	m.recipients = append(m.recipients, recipients)
	return nil
}

func (m *fakeMailer) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

func seedOverdueLoan(t *testing.T, db *gorm.DB, bookId int, email string, daysAgo int, returned *bool) {
	t.Helper()
	require.NoError(t, db.Create(&models.LoanModel{
		Customer:      "customer",
		CustomerEmail: email,
		BookId:        bookId,
		LoanDate:      time.Now().AddDate(0, 0, -daysAgo),
		Returned:      returned,
	}).Error)
}

func TestSweepNotifiesOverdueCustomers(t *testing.T) {
	db := newTestDB(t)
	books := NewBookService(db)
	loans := NewLoanService(db)
	book1 := createTestBook(t, books, "as aventuras", "Fulano", "001")
	book2 := createTestBook(t, books, "outro livro", "Ciclano", "002")
	book3 := createTestBook(t, books, "mais um", "Beltrano", "003")

	returnedTrue := true
	returnedFalse := false
	seedOverdueLoan(t, db, book1.Id, "fulano@example.com", 10, &returnedFalse)
	seedOverdueLoan(t, db, book2.Id, "ciclano@example.com", 10, nil)
	seedOverdueLoan(t, db, book3.Id, "beltrano@example.com", 10, &returnedTrue)

	mailer := &fakeMailer{}
	sweeper := NewOverdueSweeper(loans, mailer, 4)

	require.NoError(t, sweeper.Sweep())

	require.Equal(t, 1, mailer.calls())
	assert.ElementsMatch(t, []string{"fulano@example.com", "ciclano@example.com"}, mailer.recipients[0])
	assert.NotEmpty(t, mailer.messages[0])
}

func TestSweepWithNothingOverdue(t *testing.T) {
	db := newTestDB(t)
	books := NewBookService(db)
	loans := NewLoanService(db)
	book := createTestBook(t, books, "as aventuras", "Fulano", "001")

	returnedFalse := false
	seedOverdueLoan(t, db, book.Id, "fulano@example.com", 1, &returnedFalse)

	mailer := &fakeMailer{}
	sweeper := NewOverdueSweeper(loans, mailer, 4)

	require.NoError(t, sweeper.Sweep())

	assert.Zero(t, mailer.calls())
}

type blockingMailer struct {
	started chan struct{}
	release chan struct{}
	inner   fakeMailer
}

func (m *blockingMailer) SendMails(message string, recipients []string) error {
	m.started <- struct{}{}
	<-m.release
	return m.inner.SendMails(message, recipients)
}

func TestSweepDoesNotOverlap(t *testing.T) {
	db := newTestDB(t)
	books := NewBookService(db)
	loans := NewLoanService(db)
	book := createTestBook(t, books, "as aventuras", "Fulano", "001")

	returnedFalse := false
	seedOverdueLoan(t, db, book.Id, "fulano@example.com", 10, &returnedFalse)

	mailer := &blockingMailer{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	sweeper := NewOverdueSweeper(loans, mailer, 4)

	done := make(chan error, 1)
	go func() {
		done <- sweeper.Sweep()
	}()
	<-mailer.started

	// A second invocation while the first holds the lock is a no-op.
	require.NoError(t, sweeper.Sweep())

	close(mailer.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, mailer.inner.calls())
}
