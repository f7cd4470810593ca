package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/suhan648/placementpro/internal/db"
	"github.com/suhan648/placementpro/internal/placement"
	"github.com/suhan648/placementpro/internal/types"
)

// handleCreateDrive publishes a new placement drive.
func (s *Server) handleCreateDrive(w http.ResponseWriter, r *http.Request) {
	var req types.CreateDriveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	drive := &db.Drive{
		CompanyName:     req.CompanyName,
		JobRole:         req.JobRole,
		PackageLPA:      req.PackageLPA,
		MinCGPA:         req.MinCGPA,
		AllowedBranches: req.AllowedBranches,
		MaxBacklogs:     req.MaxBacklogs,
		DriveDate:       req.DriveDate,
		Venue:           req.Venue,
		Description:     req.Description,
	}
	if err := s.db.CreateDrive(r.Context(), drive); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create drive")
		return
	}

	s.jsonResponse(w, http.StatusCreated, drive)
}

// handleListDrives lists all drives, newest first.
func (s *Server) handleListDrives(w http.ResponseWriter, r *http.Request) {
	drives, err := s.db.ListDrives(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load drives")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"drives": drives,
		"count":  len(drives),
	})
}

// handleDeleteDrive removes a drive. Applications and interviews that point
// at it stay behind and render with placeholders.
func (s *Server) handleDeleteDrive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid drive ID")
		return
	}

	drive, err := s.db.GetDrive(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load drive")
		return
	}
	if drive == nil {
		s.errorResponse(w, http.StatusNotFound, "Drive not found")
		return
	}

	if err := s.db.DeleteDrive(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete drive")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleUpdateDriveStatus moves a drive through upcoming, ongoing, completed.
func (s *Server) handleUpdateDriveStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid drive ID")
		return
	}

	var req types.UpdateDriveStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	drive, err := s.db.GetDrive(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load drive")
		return
	}
	if drive == nil {
		s.errorResponse(w, http.StatusNotFound, "Drive not found")
		return
	}

	if err := s.db.UpdateDriveStatus(r.Context(), id, req.Status); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update drive status")
		return
	}
	drive.Status = req.Status

	s.jsonResponse(w, http.StatusOK, drive)
}

// handleEligibleStudents lists the students whose profiles clear the drive's
// cutoffs, with names and emails for the placement cell.
func (s *Server) handleEligibleStudents(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid drive ID")
		return
	}

	drive, err := s.db.GetDrive(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load drive")
		return
	}
	if drive == nil {
		s.errorResponse(w, http.StatusNotFound, "Drive not found")
		return
	}

	contacts, err := s.db.ListStudentContacts(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load students")
		return
	}

	eligible := make([]db.StudentContact, 0)
	for _, c := range contacts {
		if placement.IsEligible(c.Student, *drive) {
			eligible = append(eligible, c)
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"drive":    drive,
		"students": eligible,
		"count":    len(eligible),
	})
}

// handleNotifyDrive announces the drive to every eligible student. The
// response reports how many students were eligible and how many deliveries
// succeeded.
func (s *Server) handleNotifyDrive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid drive ID")
		return
	}

	drive, err := s.db.GetDrive(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load drive")
		return
	}
	if drive == nil {
		s.errorResponse(w, http.StatusNotFound, "Drive not found")
		return
	}

	contacts, err := s.db.ListStudentContacts(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load students")
		return
	}

	recipients := make([]placement.Recipient, 0)
	for _, c := range contacts {
		if placement.IsEligible(c.Student, *drive) {
			recipients = append(recipients, placement.Recipient{Name: c.Name, Email: c.Email})
		}
	}

	notified := s.dispatcher.AnnounceDrive(r.Context(), *drive, recipients)
	s.logger.Info("drive announcement sent",
		zap.String("drive_id", id.String()),
		zap.Int("eligible", len(recipients)),
		zap.Int("notified", notified),
	)

	s.jsonResponse(w, http.StatusOK, types.NotifyResult{
		Eligible: len(recipients),
		Notified: notified,
	})
}
