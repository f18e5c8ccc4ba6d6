package services

import (
	"regexp"
	"strconv"
	"strings"
)

// experiencePattern matches self-reported durations like "5 years", "18
// months", "3 yrs" or "6 mos".
var experiencePattern = regexp.MustCompile(`(?i)(\d+)\s*(years?|yrs?|months?|mos?)`)

// DefaultCertifications is the recognized medical credential vocabulary, in
// the order results are reported.
var DefaultCertifications = []string{"MBBS", "MD", "DM", "FRCS", "MRCP"}

type SignalExtractor interface {
	ExtractExperience(text string) float64
	ExtractCertifications(text string) []string
}

type signalExtractor struct {
	certifications []string
}

func NewSignalExtractor(certifications []string) SignalExtractor {
	if len(certifications) == 0 {
		certifications = DefaultCertifications
	}
	return &signalExtractor{certifications: certifications}
}

// ExtractExperience returns the largest duration claimed anywhere in the
// text, in years. Resumes list overlapping spans, so the most generous
// self-reported figure wins over a sum. Month units are divided by 12.
// No match yields 0.
func (s *signalExtractor) ExtractExperience(text string) float64 {
	if text == "" {
		return 0
	}

	var max float64
	for _, match := range experiencePattern.FindAllStringSubmatch(text, -1) {
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}

		if strings.HasPrefix(strings.ToLower(match[2]), "mo") {
			value /= 12
		}

		if value > max {
			max = value
		}
	}

	return max
}

// ExtractCertifications reports which known credentials appear in the text,
// always in vocabulary order regardless of where they occur. The result is
// never nil.
func (s *signalExtractor) ExtractCertifications(text string) []string {
	found := []string{}
	if text == "" {
		return found
	}

	lower := strings.ToLower(text)
	for _, cert := range s.certifications {
		if strings.Contains(lower, strings.ToLower(cert)) {
			found = append(found, cert)
		}
	}

	return found
}
