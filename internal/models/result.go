package models

// VerificationScores carries the raw signals behind a verdict. It is always
// fully shaped: a failed run still reports experience 0 and an empty
// certification list, and CosineSimilarity is nil only when no embedding was
// ever computed (empty or unreadable document).
type VerificationScores struct {
	CosineSimilarity        *float64 `json:"cosine_similarity"`
	ExtractedExperience     float64  `json:"extracted_experience"`
	ExtractedCertifications []string `json:"extracted_certifications"`
}

// Verdict is the terminal output of the verification pipeline.
type Verdict struct {
	Passed  bool               `json:"passed"`
	Message string             `json:"message"`
	Scores  VerificationScores `json:"scores"`
}

// InterviewDetails is the scheduling record handed out after a pass.
type InterviewDetails struct {
	CandidateID    string   `json:"candidate_id"`
	InterviewSlot  string   `json:"interview_slot"`
	MedicalExperts []string `json:"medical_experts"`
}

type VerifyResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID           string            `json:"id"`
	Status       string            `json:"status"`
	Result       *Verdict          `json:"result,omitempty"`
	Interview    *InterviewDetails `json:"interview_details,omitempty"`
	ErrorMessage *string           `json:"error_message,omitempty"`
}
