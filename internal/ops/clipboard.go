package ops

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/altinukshini/leadfinder/internal/model"
)

// ErrNoEmails is returned when there is nothing to copy.
var ErrNoEmails = errors.New("no emails to copy")

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// CollectEmails returns the non-empty emails of leads in order.
func CollectEmails(leads []model.Lead) []string {
	var out []string
	for _, l := range leads {
		if l.Email != "" {
			out = append(out, l.Email)
		}
	}
	return out
}

// CopyEmails puts every email on the clipboard, one per line, and returns
// how many were copied.
func CopyEmails(leads []model.Lead) (int, error) {
	emails := CollectEmails(leads)
	if len(emails) == 0 {
		return 0, ErrNoEmails
	}
	if err := writeClipboard(strings.Join(emails, "\n")); err != nil {
		return 0, fmt.Errorf("copy to clipboard: %w", err)
	}
	return len(emails), nil
}

// CopyEmail copies a single address. Empty and placeholder values are refused.
func CopyEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || email == "-" {
		return ErrNoEmails
	}
	if err := writeClipboard(email); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
