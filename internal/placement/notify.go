package placement

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/suhan648/placementpro/internal/db"
)

// Notifier delivers a single message to a recipient.
type Notifier interface {
	Notify(ctx context.Context, to, subject, body string) error
}

// Recipient is a notification target resolved from an eligible student.
type Recipient struct {
	Name  string
	Email string
}

// Dispatcher fans drive announcements out to eligible students. Deliveries
// run concurrently with a bounded number of in-flight sends.
type Dispatcher struct {
	notifier Notifier
	limit    int
	logger   *zap.Logger
}

// NewDispatcher creates a Dispatcher sending through the given notifier with
// at most limit concurrent deliveries. A limit below one means unbounded.
func NewDispatcher(notifier Notifier, limit int, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{notifier: notifier, limit: limit, logger: logger}
}

// AnnounceDrive notifies every recipient about the drive and returns how many
// deliveries succeeded. One recipient's failure never blocks the others;
// failures are logged and tallied, not propagated.
func (d *Dispatcher) AnnounceDrive(ctx context.Context, drive db.Drive, recipients []Recipient) int {
	subject := DriveSubject(drive)

	var sent atomic.Int64
	g, gCtx := errgroup.WithContext(ctx)
	if d.limit > 0 {
		g.SetLimit(d.limit)
	}
	for _, r := range recipients {
		g.Go(func() error {
			if err := d.notifier.Notify(gCtx, r.Email, subject, DriveAnnouncement(r.Name, drive)); err != nil {
				d.logger.Warn("drive notification failed",
					zap.String("email", r.Email),
					zap.String("company", drive.CompanyName),
					zap.Error(err))
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	_ = g.Wait()
	return int(sent.Load())
}

// DriveSubject is the announcement subject line for a drive.
func DriveSubject(drive db.Drive) string {
	return fmt.Sprintf("Placement Drive: %s at %s", drive.JobRole, drive.CompanyName)
}

// DriveAnnouncement renders the announcement body sent to one recipient.
func DriveAnnouncement(name string, drive db.Drive) string {
	return fmt.Sprintf("Dear %s,\n\n"+
		"You are eligible for the upcoming placement drive:\n\n"+
		"Company : %s\n"+
		"Role    : %s\n"+
		"Min CGPA: %g\n\n"+
		"Log in to PlacementPro to apply.\n\n"+
		"TPO Office", name, drive.CompanyName, drive.JobRole, drive.MinCGPA)
}
