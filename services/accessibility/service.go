// File: services/accessibility/service.go
package accessibility

import (
	"math"
	"regexp"
	"strings"

	"roadmate/models"

	"go.uber.org/zap"
)

// Service answers elevator/escalator questions for stations along a route.
// It is built once at startup and read-only afterwards, so it is safe to
// share across concurrent turns.
type Service struct {
	logger   *zap.Logger
	stations map[string]*stationEntry
}

type stationEntry struct {
	hasElevator    bool
	hasEscalator   bool
	elevatorExits  []string
	escalatorExits []string
}

// RouteScore is the aggregate accessibility score over a route's stations.
type RouteScore struct {
	TotalScore        float64
	ElevatorCount     int
	EscalatorCount    int
	TotalStations     int
	WalkTimeMinutes   int
	AccessibilityRate float64
}

// New loads the elevator and escalator datasets. A missing or unreadable
// dataset degrades to the embedded major-station list instead of failing
// startup.
func New(elevatorPath, escalatorPath string, logger *zap.Logger) *Service {
	s := &Service{
		logger:   logger,
		stations: make(map[string]*stationEntry),
	}

	if n, err := s.loadDataset(elevatorPath, facilityElevator); err != nil {
		logger.Warn("Elevator dataset unavailable, using embedded defaults",
			zap.String("path", elevatorPath), zap.Error(err))
		s.loadDefaults(defaultElevatorStations, facilityElevator)
	} else {
		logger.Info("Elevator dataset loaded", zap.Int("rows", n))
	}

	if n, err := s.loadDataset(escalatorPath, facilityEscalator); err != nil {
		logger.Warn("Escalator dataset unavailable, using embedded defaults",
			zap.String("path", escalatorPath), zap.Error(err))
		s.loadDefaults(defaultEscalatorStations, facilityEscalator)
	} else {
		logger.Info("Escalator dataset loaded", zap.Int("rows", n))
	}

	logger.Info("Accessibility index ready", zap.Int("stations", len(s.stations)))
	return s
}

var (
	qualifierPattern = regexp.MustCompile(`\((?:upper|lower|middle)\)`)
	lineTokenPattern = regexp.MustCompile(`\bline\s*\d+\b`)
)

// Normalize reduces a raw station name to its canonical lookup key: lower
// case, no "station" suffix, no line-number tokens, no platform qualifiers,
// no whitespace. Provider names and dataset names rarely match without this.
// Normalize is idempotent.
func Normalize(name string) string {
	n := strings.ToLower(name)
	n = qualifierPattern.ReplaceAllString(n, "")
	n = lineTokenPattern.ReplaceAllString(n, "")
	n = strings.ReplaceAll(n, "station", "")
	return strings.Join(strings.Fields(n), "")
}

// HasElevator reports whether the station is known to have an elevator.
func (s *Service) HasElevator(name string) bool {
	e := s.stations[Normalize(name)]
	return e != nil && e.hasElevator
}

// HasEscalator reports whether the station is known to have an escalator.
func (s *Service) HasEscalator(name string) bool {
	e := s.stations[Normalize(name)]
	return e != nil && e.hasEscalator
}

// Lookup returns the accessibility record for a station. Unknown stations
// yield a zero-value record, never an error.
func (s *Service) Lookup(name string) models.StationAccessibility {
	out := models.StationAccessibility{StationName: name}

	e := s.stations[Normalize(name)]
	if e == nil {
		return out
	}

	out.HasElevator = e.hasElevator
	out.HasEscalator = e.hasEscalator
	out.ElevatorExits = strings.Join(e.elevatorExits, ",")
	out.EscalatorExits = strings.Join(e.escalatorExits, ",")

	var accessible []string
	for _, exit := range e.elevatorExits {
		accessible = append(accessible, exit+" (elevator)")
	}
	for _, exit := range e.escalatorExits {
		accessible = append(accessible, exit+" (escalator)")
	}
	out.AccessibleExitInfo = strings.Join(accessible, ", ")

	return out
}

// ScoreRoute computes the aggregate accessibility score for the stations
// visited by one itinerary: 40 points weighted by elevator coverage, 30 by
// escalator coverage and up to 30 by walking time (shorter is better).
func (s *Service) ScoreRoute(stationNames []string, walkTimeSec int) RouteScore {
	var elevatorCount, escalatorCount int
	for _, name := range stationNames {
		if s.HasElevator(name) {
			elevatorCount++
		}
		if s.HasEscalator(name) {
			escalatorCount++
		}
	}

	totalStations := len(stationNames)

	var score float64
	if totalStations > 0 {
		score += float64(elevatorCount) / float64(totalStations) * 40
		score += float64(escalatorCount) / float64(totalStations) * 30
	}
	score += math.Max(0, 30-float64(walkTimeSec)/60.0)

	return RouteScore{
		TotalScore:        score,
		ElevatorCount:     elevatorCount,
		EscalatorCount:    escalatorCount,
		TotalStations:     totalStations,
		WalkTimeMinutes:   walkTimeSec / 60,
		AccessibilityRate: float64(elevatorCount) / math.Max(1, float64(totalStations)) * 100,
	}
}

func (s *Service) entry(normalized string) *stationEntry {
	e, ok := s.stations[normalized]
	if !ok {
		e = &stationEntry{}
		s.stations[normalized] = e
	}
	return e
}
