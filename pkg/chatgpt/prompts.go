package chatgpt

import (
	"fmt"

	"github.com/dskvich/audio-transcriber/pkg/domain"
)

const readabilityPromptTemplate = "You will receive a verbatim transcript. Return the same content edited for readability: " +
	"add punctuation, capitalization, and paragraph breaks. Do not change meaning or add new information.\n\n" +
	"Transcript:\n%s\n\nOutput:"

const interviewPromptTemplate = "You are an assistant that reformats verbatim transcripts into a clear interview " +
	"between two people labeled 'Interviewer' and 'Interviewee'. Preserve the original " +
	"content and meaning exactly — do not invent, omit, or add facts. Improve readability " +
	"with punctuation, capitalization, and short paragraphs for each turn. Use the format:\n\n" +
	"Interviewer: <question or prompt>\n" +
	"Interviewee: <response>\n\n" +
	"If speaker identity is unclear, assign turns logically but do not attribute words to a " +
	"specific real person. Keep the tone neutral and faithful to the source.\n\n" +
	"Transcript:\n%s\n\nFormatted interview:"

func buildPrompt(mode domain.EnhanceMode, transcript string) (string, error) {
	switch mode {
	case domain.ModeReadability:
		return fmt.Sprintf(readabilityPromptTemplate, transcript), nil
	case domain.ModeInterview:
		return fmt.Sprintf(interviewPromptTemplate, transcript), nil
	default:
		return "", fmt.Errorf("unknown enhance mode: %q", mode)
	}
}
