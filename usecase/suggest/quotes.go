package suggest

// Quote is a motivational line shown on the dashboard.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

var quotes = []Quote{
	{Text: "It's not about having time, it's about making time.", Author: "Unknown"},
	{Text: "The future depends on what you do today.", Author: "Mahatma Gandhi"},
	{Text: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson"},
	{Text: "Productivity is being able to do things that you were never able to do before.", Author: "Franz Kafka"},
	{Text: "You don't have to be great to start, but you have to start to be great.", Author: "Zig Ziglar"},
	{Text: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney"},
	{Text: "Amateurs sit and wait for inspiration, the rest of us just get up and go to work.", Author: "Stephen King"},
	{Text: "Your work is going to fill a large part of your life, and the only way to be truly satisfied is to do what you believe is great work.", Author: "Steve Jobs"},
	{Text: "Start where you are. Use what you have. Do what you can.", Author: "Arthur Ashe"},
	{Text: "If you spend too much time thinking about a thing, you'll never get it done.", Author: "Bruce Lee"},
}

// DailyQuote rotates through the catalog once per day.
func (uc *UseCase) DailyQuote() Quote {
	return quotes[uc.clock.Now().YearDay()%len(quotes)]
}
