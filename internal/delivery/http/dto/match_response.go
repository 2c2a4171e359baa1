package dto

import "connectus/internal/domain/matching"

type MatchResponse struct {
	MatchScore    int      `json:"match_score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

func NewMatchResponse(r matching.Result) MatchResponse {
	return MatchResponse{
		MatchScore:    r.MatchScore,
		MatchedSkills: r.MatchedSkills,
		MissingSkills: r.MissingSkills,
	}
}
