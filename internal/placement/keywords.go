package placement

import (
	"strings"
	"unicode/utf8"

	"github.com/suhan648/placementpro/internal/db"
)

const (
	replyEmpty    = "Please type a message."
	replyGreeting = "Hello! 👋 I am PlacementBot. Ask me about cutoffs, drives, resume, or referrals!"
	replyThanks   = "You're welcome! Best of luck! 😊"
	replyBye      = "Goodbye! All the best! 🎓"
	replyDefault  = "I'm not sure about that. Try asking about:\n• CGPA cutoffs\n• Interview schedule\n• How to apply\n• Resume download\n• Alumni referrals"
)

var greetings = []string{"hi", "hello", "hey", "good morning", "good evening"}

// Reply answers a chatbot query from the FAQ knowledge base. The best-scoring
// entry's answer is returned when any entry scores above zero; otherwise a
// canned reply is chosen from the query's tone, falling back to a hint about
// what the bot can answer.
func Reply(query string, faqs []db.FAQ) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return replyEmpty
	}

	if answer, score := BestAnswer(q, faqs); score > 0 {
		return answer
	}

	for _, g := range greetings {
		if strings.Contains(q, g) {
			return replyGreeting
		}
	}
	if strings.Contains(q, "thank") {
		return replyThanks
	}
	if strings.Contains(q, "bye") {
		return replyBye
	}
	return replyDefault
}

// BestAnswer returns the answer of the highest-scoring FAQ entry along with
// its score. Ties keep the earliest entry, so the knowledge base's insertion
// order is the tiebreaker. A zero score means nothing matched; callers should
// treat the answer as unusable in that case.
func BestAnswer(query string, faqs []db.FAQ) (string, int) {
	q := strings.ToLower(strings.TrimSpace(query))

	var best db.FAQ
	bestScore := 0
	for _, faq := range faqs {
		if score := scoreFAQ(q, faq); score > bestScore {
			best, bestScore = faq, score
		}
	}
	return best.Answer, bestScore
}

// scoreFAQ weighs keyword hits over incidental question-word overlap: each
// configured keyword found in the query is worth 3, each word of the stored
// question longer than 3 runes found in the query is worth 1.
func scoreFAQ(q string, faq db.FAQ) int {
	score := 0
	for _, kw := range strings.Split(faq.Keywords, ",") {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(q, kw) {
			score += 3
		}
	}
	for _, w := range strings.Fields(strings.ToLower(faq.Question)) {
		if utf8.RuneCountInString(w) > 3 && strings.Contains(q, w) {
			score++
		}
	}
	return score
}
