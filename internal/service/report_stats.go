package service

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"coaching-portal-backend/internal/database/models"
	"coaching-portal-backend/internal/repository"
)

// LeaderboardSize is how many teams the top and bottom rankings hold
const LeaderboardSize = 3

// TeamPerformance is one row of the per-team rollup
type TeamPerformance struct {
	TeamID         *uint   `json:"team_id,omitempty"`
	TeamName       string  `json:"team_name"`
	LeaderID       *uint   `json:"leader_id,omitempty"`
	CoachingCount  int64   `json:"coaching_count"`
	AvgScore       float64 `json:"avg_score"`
	TotalTime      int64   `json:"total_time"`
	AvgTime        float64 `json:"avg_time"`
	Archive        bool    `json:"archive,omitempty"`
	MeetsBenchmark bool    `json:"meets_benchmark"`
}

// MemberPerformance is one row of the per-member rollup
type MemberPerformance struct {
	MemberID         uint    `json:"member_id"`
	Name             string  `json:"name"`
	TeamName         string  `json:"team_name"`
	CoachingCount    int     `json:"coaching_count"`
	AvgScore         float64 `json:"avg_score"`
	AvgChecklist     float64 `json:"avg_checklist"`
	TotalTime        int     `json:"total_time"`
	TotalTimeDisplay string  `json:"total_time_display"`
}

// SubjectBucket is one bar of the subject histogram
type SubjectBucket struct {
	Subject string `json:"subject"`
	Count   int64  `json:"count"`
}

// Leaderboard holds the best and worst performing teams
type Leaderboard struct {
	Top    []TeamPerformance `json:"top"`
	Bottom []TeamPerformance `json:"bottom"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func avgTime(total, count int64) float64 {
	if count == 0 {
		return 0
	}
	return round2(float64(total) / float64(count))
}

// FormatDuration renders minutes as "H hrs M min"
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%d hrs %d min", minutes/60, minutes%60)
}

// ParseTeamFilter reads a team query value. "all", empty and malformed input mean no filter.
func ParseTeamFilter(raw string) *uint {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil
	}
	teamID := uint(id)
	return &teamID
}

func teamPerformanceFromRow(row repository.TeamStatsRow, benchmark float64) TeamPerformance {
	teamID := row.TeamID
	avg := round2(row.AvgScore)
	return TeamPerformance{
		TeamID:         &teamID,
		TeamName:       row.TeamName,
		LeaderID:       row.LeaderID,
		CoachingCount:  row.CoachingCount,
		AvgScore:       avg,
		TotalTime:      row.TotalTime,
		AvgTime:        avgTime(row.TotalTime, row.CoachingCount),
		MeetsBenchmark: row.CoachingCount > 0 && avg >= benchmark,
	}
}

func archivePerformance(row *repository.AggregateRow, name string, benchmark float64) TeamPerformance {
	avg := round2(row.AvgScore)
	return TeamPerformance{
		TeamName:       name,
		CoachingCount:  row.CoachingCount,
		AvgScore:       avg,
		TotalTime:      row.TotalTime,
		AvgTime:        avgTime(row.TotalTime, row.CoachingCount),
		Archive:        true,
		MeetsBenchmark: row.CoachingCount > 0 && avg >= benchmark,
	}
}

// RankTeams returns the n best teams by (score, count) and the n worst teams
// by score ascending with higher counts first among equals. Teams without
// coachings never appear in the bottom ranking; the archive row appears in neither.
func RankTeams(teams []TeamPerformance, n int) Leaderboard {
	ranked := make([]TeamPerformance, 0, len(teams))
	withCoachings := make([]TeamPerformance, 0, len(teams))
	for _, t := range teams {
		if t.Archive {
			continue
		}
		ranked = append(ranked, t)
		if t.CoachingCount > 0 {
			withCoachings = append(withCoachings, t)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].AvgScore != ranked[j].AvgScore {
			return ranked[i].AvgScore > ranked[j].AvgScore
		}
		return ranked[i].CoachingCount > ranked[j].CoachingCount
	})
	sort.SliceStable(withCoachings, func(i, j int) bool {
		if withCoachings[i].AvgScore != withCoachings[j].AvgScore {
			return withCoachings[i].AvgScore < withCoachings[j].AvgScore
		}
		return withCoachings[i].CoachingCount > withCoachings[j].CoachingCount
	})

	return Leaderboard{Top: head(ranked, n), Bottom: head(withCoachings, n)}
}

func head(teams []TeamPerformance, n int) []TeamPerformance {
	if len(teams) > n {
		return teams[:n]
	}
	return teams
}

// RollupMembers aggregates coachings per member. Members without coachings
// are kept with zero values; coachings of members not listed are ignored.
func RollupMembers(members []models.TeamMember, coachings []models.Coaching, archiveName string) []MemberPerformance {
	type acc struct {
		count     int
		score     float64
		checklist float64
		minutes   int
	}
	byMember := make(map[uint]*acc, len(members))
	for _, m := range members {
		byMember[m.ID] = &acc{}
	}
	for i := range coachings {
		a, ok := byMember[coachings[i].TeamMemberID]
		if !ok {
			continue
		}
		a.count++
		a.score += coachings[i].OverallScore()
		a.checklist += coachings[i].Checklist.Percentage()
		a.minutes += coachings[i].TimeSpent
	}

	rows := make([]MemberPerformance, 0, len(members))
	for i := range members {
		a := byMember[members[i].ID]
		row := MemberPerformance{
			MemberID:         members[i].ID,
			Name:             members[i].Name,
			TeamName:         members[i].TeamName(archiveName),
			CoachingCount:    a.count,
			TotalTime:        a.minutes,
			TotalTimeDisplay: FormatDuration(a.minutes),
		}
		if a.count > 0 {
			row.AvgScore = round2(a.score / float64(a.count))
			row.AvgChecklist = round2(a.checklist / float64(a.count))
		}
		rows = append(rows, row)
	}
	return rows
}

func subjectBuckets(rows []repository.SubjectCountRow) []SubjectBucket {
	buckets := make([]SubjectBucket, 0, len(rows))
	for _, r := range rows {
		if strings.TrimSpace(r.Subject) == "" {
			continue
		}
		buckets = append(buckets, SubjectBucket{Subject: r.Subject, Count: r.Count})
	}
	return buckets
}
