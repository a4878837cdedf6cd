package services

import (
	"log"
	"sync"
	"time"
)

const overdueMailMessage = "Atenção! Você tem um empréstimo atrasado. Favor devolver o livro o mais rápido possível."

// OverdueSweeper scans for active loans past the overdue cutoff and sends
// one batch notification to their customers. A cron schedule drives Sweep;
// a sweep that fires while the previous one is still running is skipped.
type OverdueSweeper struct {
	loans       *LoanService
	mailer      Mailer
	overdueDays int
	mu          sync.Mutex
}

func NewOverdueSweeper(loans *LoanService, mailer Mailer, overdueDays int) *OverdueSweeper {
	return &OverdueSweeper{
		loans:       loans,
		mailer:      mailer,
		overdueDays: overdueDays,
	}
}

func (s *OverdueSweeper) Sweep() error {
	if !s.mu.TryLock() {
		log.Println("Overdue sweep already running, skipping this run")
		return nil
	}
	defer s.mu.Unlock()

	cutoff := time.Now().AddDate(0, 0, -s.overdueDays)
	loans, err := s.loans.FindOverdue(cutoff)
	if err != nil {
		return err
	}
	if len(loans) == 0 {
		return nil
	}

	emails := make([]string, 0, len(loans))
	for _, loan := range loans {
		if loan.CustomerEmail != "" {
			emails = append(emails, loan.CustomerEmail)
		}
	}
	if len(emails) == 0 {
		return nil
	}

	if err := s.mailer.SendMails(overdueMailMessage, emails); err != nil {
		return err
	}
	log.Printf("Overdue sweep notified %d customers\n", len(emails))
	return nil
}
