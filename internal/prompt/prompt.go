// Package prompt builds the instruction strings sent to the generative
// model. Every function is a pure template over its arguments; user text
// is interpolated verbatim, which is an accepted limitation of this
// system rather than something the builder tries to sanitize.
package prompt

import (
	"encoding/json"
	"fmt"
)

// QuizTypeProgress selects the progress-tracking phrasing for quiz
// generation; any other value is treated as a diagnosis quiz.
const QuizTypeProgress = "progress"

func GeneralCounseling(message string) string {
	return fmt.Sprintf(`You are a compassionate mental health AI counsellor.
1. Empathize with the user's feelings.
2. Gently ask diagnostic questions if appropriate.
3. Suggest helpful therapy tips or coping strategies.
4. If possible, list potential mental health conditions based on user's input.
5. Keep your advice general and safe, avoid giving medical prescriptions.
User's message: "%s"`, message)
}

func SpecialisedCounseling(disorder, message string) string {
	return fmt.Sprintf(`You are an empathetic mental health counsellor specializing in %s.
The user is seeking counselling and therapy support for this condition.

Guidelines:
- Respond in a calm, supportive, and non-judgmental tone.
- Do not give medical diagnoses or prescriptions.
- Focus on emotional support, coping techniques, and general advice relevant to %s.
- Encourage seeking professional help if the condition is severe.

User message: "%s"

Provide a concise, empathetic, and disorder-focused reply.`, disorder, disorder, message)
}

func QuizQuestions(quizType, disorder string) string {
	verb := "diagnose"
	if quizType == QuizTypeProgress {
		verb = "track progress of"
	}
	return fmt.Sprintf("Generate 10 yes/no questions to %s %s. Only provide the questions in a numbered list.", verb, disorder)
}

// QuizEvaluation embeds the serialized answer set and pins the model to
// a three-line output format the caller passes through verbatim.
func QuizEvaluation(quizType, disorder string, answers json.RawMessage) string {
	return fmt.Sprintf(`Here are the answers to a %s quiz for %s.
Questions and answers: %s.

1. Evaluate these answers and give a score out of 100.
2. After the score, also provide a short recommendation on whether the person should consult a mental health professional or not.
3. For general mental health quiz in the diagnosis type, provide only a list of possible conditions they might have based on their answers and no explanations to why they might have these conditions to keep the response concise.

Format the reply as:
"Your score is X/100."
"Recommendation: [your advice here]"
"Possible conditions: [list of conditions]" (only for general mental health diagnosis quiz)`, quizType, disorder, string(answers))
}

func Checklist(disorder string) string {
	return fmt.Sprintf(`Provide a checklist of 5 daily tasks to help manage %s.
Keep them short, practical, and empathetic. Return only the tasks in numbered list.`, disorder)
}

// ChecklistRemarks branches on completion: a finished checklist earns an
// encouraging remark, anything less gets a supportive one that names the
// shortfall and the consequences of skipping tasks.
func ChecklistRemarks(disorder string, completed, total int) string {
	if completed == total {
		return fmt.Sprintf(`The user has successfully completed all %d tasks for %s.
Write an empathetic and encouraging remark that motivates them to keep going.`, total, disorder)
	}
	return fmt.Sprintf(`The user completed %d out of %d tasks for %s.
Write a supportive remark: explain kindly why finishing all tasks is important,
mention possible consequences of missing tasks, and motivate them to try again tomorrow.`, completed, total, disorder)
}
