package server

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/suhan648/placementpro/internal/db"
	"github.com/suhan648/placementpro/internal/placement"
)

// handleAnalytics assembles the placement cell's dashboard numbers. The
// queries are independent, so they run concurrently and the first failure
// cancels the rest.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	g, ctx := errgroup.WithContext(r.Context())

	var (
		totalDrives       int
		totalApplications int
		totalPlaced       int
		totalStudents     int
		statusBreakdown   []db.StatusCount
		branchPlaced      []db.BranchCount
		driveStats        []db.DriveStat
		topSkills         []db.SkillCount
	)

	g.Go(func() error {
		var err error
		totalDrives, err = s.db.CountDrives(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalApplications, err = s.db.CountApplications(ctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		totalPlaced, err = s.db.CountApplications(ctx, placement.StatusSelected)
		return err
	})
	g.Go(func() error {
		var err error
		totalStudents, err = s.db.CountUsersByRole(ctx, "student")
		return err
	})
	g.Go(func() error {
		var err error
		statusBreakdown, err = s.db.StatusBreakdown(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		branchPlaced, err = s.db.BranchPlacedCounts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		driveStats, err = s.db.DriveStats(ctx, 10)
		return err
	})
	g.Go(func() error {
		var err error
		topSkills, err = s.db.TopSkills(ctx, 10)
		return err
	})

	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load analytics")
		return
	}

	placementRate := 0.0
	if totalStudents > 0 {
		placementRate = float64(totalPlaced) / float64(totalStudents) * 100
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"total_drives":       totalDrives,
		"total_applications": totalApplications,
		"total_placed":       totalPlaced,
		"total_students":     totalStudents,
		"placement_rate":     placementRate,
		"status_breakdown":   statusBreakdown,
		"branch_placed":      branchPlaced,
		"drive_stats":        driveStats,
		"top_skills":         topSkills,
	})
}
