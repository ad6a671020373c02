// Package recommend ranks study groups and exam resources for a user. Scoring
// is a pure function of the user's profile, their accepted connection set, the
// candidate list, and the clock, so identical inputs always produce identical
// output.
package recommend

import (
	"sort"
	"strings"
	"time"

	"github.com/muktarbdulkader/campus-connector/internal/app/models"
)

// Weight tiers. Connection affinity dominates every other plausible bonus so
// connection-sourced content always surfaces first; university outranks
// department/year, which outrank skills, which outrank popularity and recency.
const (
	groupConnectionBonus = 150
	groupUniversityBonus = 80
	groupDepartmentBonus = 60
	groupSkillBonus      = 35
	groupMemberWeight    = 3
	groupRecencyBonus    = 20
	groupRecencyWindow   = 7 * 24 * time.Hour
	groupResultCap       = 8

	resourceConnectionBonus = 200
	resourceUniversityBonus = 80
	resourceDepartmentBonus = 70
	resourceYearBonus       = 60
	resourceSkillBonus      = 30
	resourceRatioWeight     = 50
	resourceDownloadWeight  = 1
	resourceHelpfulWeight   = 3
	resourceRecencyBonus    = 25
	resourceRecencyWindow   = 30 * 24 * time.Hour
	resourceResultCap       = 12
)

// ScoredGroup is a study group annotated with its relevance score.
type ScoredGroup struct {
	models.StudyGroup
	RecommendationScore float64 `json:"recommendationScore"`
}

// ScoredResource is an exam resource annotated with its relevance score.
type ScoredResource struct {
	models.ExamResource
	RecommendationScore float64 `json:"recommendationScore"`
}

// skillTokens splits a comma-separated skills string into lower-cased,
// trimmed tokens. Empty tokens are dropped.
func skillTokens(skills string) []string {
	parts := strings.Split(strings.ToLower(skills), ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func containsAny(needle string, haystacks ...string) bool {
	if needle == "" {
		return false
	}
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// StudyGroups scores and ranks candidate groups for the given user. Groups the
// user already belongs to and groups at capacity are excluded before scoring.
// Ties keep the candidates' original order; the result is capped at 8.
func StudyGroups(profile *models.Profile, connections []string, candidates []models.StudyGroup, now time.Time) []ScoredGroup {
	connected := toSet(connections)
	skills := skillTokens(profile.Skills)
	university := strings.ToLower(profile.University)
	department := strings.ToLower(profile.Department)

	scored := make([]ScoredGroup, 0, len(candidates))
	for _, group := range candidates {
		if memberOf(group.Members, profile.ID) || group.IsFull() {
			continue
		}

		subject := strings.ToLower(group.Subject)
		description := strings.ToLower(group.Description)

		score := 0.0

		for _, memberID := range group.Members {
			if _, ok := connected[memberID]; ok {
				score += groupConnectionBonus
				break
			}
		}

		if containsAny(university, subject, description) {
			score += groupUniversityBonus
		}
		if containsAny(department, subject, description) {
			score += groupDepartmentBonus
		}
		for _, skill := range skills {
			if containsAny(skill, subject, description) {
				score += groupSkillBonus
			}
		}

		score += float64(len(group.Members)) * groupMemberWeight

		if now.Sub(group.CreatedAt) < groupRecencyWindow {
			score += groupRecencyBonus
		}

		scored = append(scored, ScoredGroup{StudyGroup: group, RecommendationScore: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RecommendationScore > scored[j].RecommendationScore
	})

	if len(scored) > groupResultCap {
		scored = scored[:groupResultCap]
	}
	return scored
}

// ExamResources scores and ranks candidate resources for the given user. All
// resources are scored; those with no relevance signal at all (score zero) are
// dropped. Ties keep the candidates' original order; the result is capped at
// 12.
func ExamResources(profile *models.Profile, connections []string, candidates []models.ExamResource, now time.Time) []ScoredResource {
	connected := toSet(connections)
	skills := skillTokens(profile.Skills)
	university := strings.ToLower(profile.University)
	department := strings.ToLower(profile.Department)
	year := strings.ToLower(profile.Year)

	scored := make([]ScoredResource, 0, len(candidates))
	for _, resource := range candidates {
		course := strings.ToLower(resource.Course)
		description := strings.ToLower(resource.Description)

		score := 0.0

		if _, ok := connected[resource.UploaderID]; ok {
			score += resourceConnectionBonus
		}

		if containsAny(university, course, description) {
			score += resourceUniversityBonus
		}
		if containsAny(department, course, description) {
			score += resourceDepartmentBonus
		}
		if containsAny(year, course, description) {
			score += resourceYearBonus
		}
		for _, skill := range skills {
			if containsAny(skill, course, description) {
				score += resourceSkillBonus
			}
		}

		// Quality: helpfulness ratio, then raw popularity.
		if resource.Downloads > 0 {
			score += float64(resource.Helpful) / float64(resource.Downloads) * resourceRatioWeight
		}
		score += float64(resource.Downloads) * resourceDownloadWeight
		score += float64(resource.Helpful) * resourceHelpfulWeight

		if now.Sub(resource.CreatedAt) < resourceRecencyWindow {
			score += resourceRecencyBonus
		}

		if score <= 0 {
			continue
		}
		scored = append(scored, ScoredResource{ExamResource: resource, RecommendationScore: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RecommendationScore > scored[j].RecommendationScore
	})

	if len(scored) > resourceResultCap {
		scored = scored[:resourceResultCap]
	}
	return scored
}

func memberOf(members []string, id string) bool {
	for _, m := range members {
		if m == id {
			return true
		}
	}
	return false
}
