// File: services/accessibility/dataset.go
package accessibility

import (
	"encoding/csv"
	"fmt"
	"os"
)

type facility int

const (
	facilityElevator facility = iota
	facilityEscalator
)

// loadDataset reads a (line, stationName, exitNumber) CSV with a header row
// and records one facility per row. Short rows are skipped, not fatal.
func (s *Service) loadDataset(path string, kind facility) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("read dataset: %w", err)
	}

	rows := 0
	for i, rec := range records {
		if i == 0 || len(rec) < 2 {
			continue // header or malformed row
		}
		station := rec[1]
		exit := ""
		if len(rec) > 2 {
			exit = rec[2]
		}
		s.record(station, exit, kind)
		rows++
	}

	if rows == 0 {
		return 0, fmt.Errorf("dataset %s contains no usable rows", path)
	}
	return rows, nil
}

func (s *Service) record(station, exit string, kind facility) {
	e := s.entry(Normalize(station))
	switch kind {
	case facilityElevator:
		e.hasElevator = true
		if exit != "" {
			e.elevatorExits = append(e.elevatorExits, exit)
		}
	case facilityEscalator:
		e.hasEscalator = true
		if exit != "" {
			e.escalatorExits = append(e.escalatorExits, exit)
		}
	}
}

func (s *Service) loadDefaults(stations []string, kind facility) {
	for _, station := range stations {
		s.record(station, "", kind)
	}
}

// Well-known major stations, used when the dataset cannot be loaded.
// Availability over completeness: a thin index beats a dead server.
var defaultElevatorStations = []string{
	"Gangnam Station", "Hongik University Station", "Sinchon Station",
	"Myeongdong Station", "Jonggak Station", "City Hall Station",
	"Euljiro 1-ga Station", "Dongdaemun History & Culture Park Station",
	"Jamsil Station", "Seolleung Station", "Seoul Station",
	"Yongsan Station", "Wangsimni Station", "Konkuk University Station",
	"Seonjeongneung Station",
}

var defaultEscalatorStations = []string{
	"Gangnam Station", "Hongik University Station", "Sinchon Station",
	"Myeongdong Station", "Jonggak Station", "City Hall Station",
	"Euljiro 1-ga Station", "Dongdaemun History & Culture Park Station",
	"Jamsil Station", "Seolleung Station", "Seoul Station",
	"Yongsan Station", "Wangsimni Station", "Konkuk University Station",
	"Seonjeongneung Station", "Sinnonhyeon Station", "Nonhyeon Station",
	"Apgujeong Station", "Cheongdam Station", "Samseong Station",
}
