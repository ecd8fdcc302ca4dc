package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vitalsign/lifebattery/internal/engine"
	"github.com/vitalsign/lifebattery/internal/metrics"
	"github.com/vitalsign/lifebattery/internal/storage"
	"github.com/vitalsign/lifebattery/pkg/logger"
)

type impactRequest struct {
	Period  engine.PeriodType     `json:"period"`
	Samples []engine.MetricSample `json:"samples"`
	Profile engine.Profile        `json:"profile"`
}

type projectionRequest struct {
	SubjectID string                `json:"subject_id"`
	Samples   []engine.MetricSample `json:"samples"`
	Profile   engine.Profile        `json:"profile"`
}

type optimalProjectionRequest struct {
	SubjectID string         `json:"subject_id"`
	Profile   engine.Profile `json:"profile"`
}

type recommendationRequest struct {
	Kind         engine.MetricKind `json:"kind"`
	CurrentValue float64           `json:"current_value"`
	Profile      engine.Profile    `json:"profile"`
}

func aggregateHandler(eng *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req impactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Period == "" {
			req.Period = engine.PeriodDay
		}

		agg, err := eng.Aggregate(req.Samples, req.Period, req.Profile)
		if err != nil {
			respondEngineError(c, err)
			return
		}

		metrics.AggregationsComputed.WithLabelValues(string(agg.PeriodType)).Inc()
		countClamped(agg.Impacts)
		c.JSON(http.StatusOK, agg)
	}
}

func projectionHandler(eng *engine.Engine, db *storage.PostgresClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req projectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		projection, err := eng.Project(req.Samples, req.Profile)
		if err != nil {
			respondEngineError(c, err)
			return
		}

		metrics.ProjectionsComputed.WithLabelValues("current").Inc()
		countClamped(projection.Impacts)
		persistSnapshot(c.Request.Context(), db, req.SubjectID, "current", eng, projection)
		c.JSON(http.StatusOK, projection)
	}
}

func optimalProjectionHandler(eng *engine.Engine, db *storage.PostgresClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req optimalProjectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		projection, err := eng.ProjectOptimal(req.Profile)
		if err != nil {
			respondEngineError(c, err)
			return
		}

		metrics.ProjectionsComputed.WithLabelValues("optimal").Inc()
		persistSnapshot(c.Request.Context(), db, req.SubjectID, "optimal", eng, projection)
		c.JSON(http.StatusOK, projection)
	}
}

func improvedProjectionHandler(eng *engine.Engine, db *storage.PostgresClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req projectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		projection, err := eng.ProjectImproved(req.Samples, req.Profile)
		if err != nil {
			respondEngineError(c, err)
			return
		}

		metrics.ProjectionsComputed.WithLabelValues("improved").Inc()
		persistSnapshot(c.Request.Context(), db, req.SubjectID, "improved", eng, projection)
		c.JSON(http.StatusOK, projection)
	}
}

func recommendationHandler(eng *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req recommendationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		rec, err := eng.BenefitOf(req.Kind, req.CurrentValue, req.Profile)
		if err != nil {
			respondEngineError(c, err)
			return
		}

		if rec.UsedFallback {
			metrics.SolverFallbacks.Inc()
		}
		c.JSON(http.StatusOK, rec)
	}
}

func recentProjectionsHandler(db *storage.PostgresClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		subjectID := c.Param("subject")
		limit := 20
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 || parsed > 500 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer between 1 and 500"})
				return
			}
			limit = parsed
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		snapshots, err := db.RecentProjections(ctx, subjectID, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"snapshots": snapshots,
			"count":     len(snapshots),
		})
	}
}

// persistSnapshot stores a computed projection for the history endpoint.
// Persistence failures are logged, never surfaced: the computed result is
// already in hand and the product must always be able to show it.
func persistSnapshot(
	ctx context.Context,
	db *storage.PostgresClient,
	subjectID, variant string,
	eng *engine.Engine,
	projection engine.LifeProjection,
) {
	if subjectID == "" {
		return
	}

	battery := eng.BatteryLevel(projection.Impacts, engine.PeriodDay)

	snap := &storage.ProjectionSnapshot{
		SubjectID:             subjectID,
		Variant:               variant,
		BaselineYears:         projection.BaselineLifeExpectancyYears,
		HealthAdjustmentYears: projection.HealthAdjustmentYears,
		AdjustedYears:         projection.AdjustedLifeExpectancyYears,
		YearsRemaining:        projection.YearsRemaining,
		PercentageRemaining:   projection.PercentageRemaining,
		BatteryLevelPercent:   battery,
		DefaultProfileUsed:    projection.DefaultProfileUsed,
	}

	saveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.SaveProjection(saveCtx, snap); err != nil {
		logger.Warn("Snapshot persistence failed",
			zap.String("subject", subjectID),
			zap.String("variant", variant),
			zap.Error(err),
		)
	}
}

func countClamped(impacts []engine.MetricImpact) {
	for _, impact := range impacts {
		if impact.Clamped {
			metrics.ClampedSamples.WithLabelValues(string(impact.Kind)).Inc()
		}
	}
}

func respondEngineError(c *gin.Context, err error) {
	// Missing calibration is a deployment defect; everything else the
	// engine degrades around, so any other error here is unexpected.
	status := http.StatusInternalServerError
	if errors.Is(err, engine.ErrNoCalibration) {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
