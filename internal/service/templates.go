package service

import "avatar-trivia/internal/domain"

// staticTemplates es el pool fijo de la estrategia estática: 20 plantillas
// pre-ligadas a opciones e índice correcto, con {username} como único
// placeholder. El balance por categoría (3/5/4/4/4) es el autorado, no una
// garantía del generador.
var staticTemplates = []domain.QuestionTemplate{
	{Category: domain.CategoryMindset, Text: "What personality trait is {username} most known for?", Options: []string{"Openness", "Conscientiousness", "Extraversion", "Agreeableness"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryMindset, Text: "What value does {username} prioritize most?", Options: []string{"Transparency", "Competition", "Tradition", "Security"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryMindset, Text: "What drives {username}’s motivation?", Options: []string{"Innovation", "Stability", "Fame", "Comfort"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryCareer, Text: "What is {username}’s top interest?", Options: []string{"Artificial Intelligence", "Finance", "Sports", "Art"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryCareer, Text: "What technology does {username} engage with?", Options: []string{"Blockchain", "Virtual Reality", "Quantum Computing", "Robotics"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryCareer, Text: "What skill is {username} passionate about?", Options: []string{"Coding", "Marketing", "Design", "Writing"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryCareer, Text: "Where does {username} thrive professionally?", Options: []string{"San Francisco tech scene", "Wall Street", "Hollywood", "Academic research"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryCareer, Text: "What field excites {username}?", Options: []string{"Tech Events", "Fashion", "Politics", "Culinary Arts"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryLifeGoals, Text: "What is {username}’s main goal?", Options: []string{"Build decentralized solutions", "Start a traditional business", "Become a teacher", "Travel the world"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryLifeGoals, Text: "What impact does {username} want to have?", Options: []string{"Advance technology", "Preserve tradition", "Promote art", "Protect environment"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryLifeGoals, Text: "What does {username} aim to build?", Options: []string{"Decentralized platforms", "Corporate empires", "Charity organizations", "Social media apps"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryLifeGoals, Text: "What future does {username} envision?", Options: []string{"Decentralized internet", "Global corporation", "Sustainable cities", "Space exploration"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryVibe, Text: "How does {username} communicate?", Options: []string{"Enthusiastic and technical", "Formal and reserved", "Casual and humorous", "Direct and blunt"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryVibe, Text: "What tone does {username} use in posts?", Options: []string{"Excited", "Sarcastic", "Neutral", "Critical"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryVibe, Text: "What’s {username}’s social vibe?", Options: []string{"Tech enthusiast", "Corporate professional", "Free spirit", "Activist"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryVibe, Text: "How would friends describe {username}’s energy?", Options: []string{"Innovative", "Conservative", "Relaxed", "Intense"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryOnlineHabits, Text: "When does {username} typically post about tech?", Options: []string{"Morning", "Afternoon", "Evening", "Late Night"}, Answer: domain.StaticAnswer(2)},
	{Category: domain.CategoryOnlineHabits, Text: "What events does {username} share online?", Options: []string{"Tech Events", "Music Festivals", "Book Clubs", "Sports Games"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryOnlineHabits, Text: "What’s {username}’s favorite online topic?", Options: []string{"Web3", "Politics", "Travel", "Food"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryOnlineHabits, Text: "How often does {username} post about coding?", Options: []string{"Frequently", "Occasionally", "Rarely", "Never"}, Answer: domain.StaticAnswer(0)},
}

// answerUnspecified marca plantillas autoradas sin respuesta correcta.
// No pueden materializar una Question válida, así que el constructor del
// pool generativo las excluye.
var answerUnspecified = domain.AnswerRule{Index: -1}

// generativeTemplates es el pool crudo de la estrategia generativa. Las
// categorías originales se mapean al vocabulario fijo: Personality→Mindset,
// Topics→Career, Posting Habits→Online Habits. Las plantillas con
// placeholders u reglas que piden datos que el Avatar no tiene se descartan
// por instancia en tiempo de selección.
var generativeTemplates = []domain.QuestionTemplate{
	{Category: domain.CategoryMindset, Text: "What's {username}'s secret Twitter superpower?", Options: []string{"{superpower}", "Going viral with one word", "Predicting trends", "Endless retweets"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryOnlineHabits, Text: "When is {username} most likely to tweet?", Options: []string{"Morning", "Afternoon", "Evening", "3am"}, Answer: domain.DerivedAnswer(domain.DeriveNightOwl)},
	{Category: domain.CategoryVibe, Text: "What's {username}'s biggest vibe?", Options: []string{"Chill Vibes CEO", "Meme King/Queen", "Deep Thinker", "Chaos Agent"}, Answer: domain.DerivedAnswer(domain.DeriveNightOwl)},
	{Category: domain.CategoryMindset, Text: "If {username} were a movie character, what genre would they be in?", Options: []string{"Sci-Fi", "Comedy", "Drama", "Action"}, Answer: answerUnspecified},
	{Category: domain.CategoryCareer, Text: "What's {username}'s favorite topic to tweet about?", Options: []string{"{topic}", "Politics", "Food", "Travel"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryCareer, Text: "What's another topic {username} loves to tweet about?", Options: []string{"{secondary_topic}", "Fashion", "Sports", "Music"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryMindset, Text: "What's {username}'s hidden quirk?", Options: []string{"{quirk}", "Sings to plants", "Collects rare coins", "Talks to their code"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryMindset, Text: "What's {username}'s Twitter motto?", Options: []string{"{motto}", "Keep it real", "YOLO", "Stay curious"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryOnlineHabits, Text: "What's {username}'s posting style?", Options: []string{"{posting_style}", "One-word wonders", "Essay threads", "GIF spam"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryMindset, Text: "What drives {username}'s tweets?", Options: []string{"Innovation", "Humor", "Drama", "Chill vibes"}, Answer: domain.DerivedAnswer(domain.DeriveOpennessInnovation)},
	{Category: domain.CategoryMindset, Text: "What's {username}'s Twitter nickname vibe?", Options: []string{"{nickname}", "The Silent Sage", "The Meme Machine", "The Dream Weaver"}, Answer: domain.StaticAnswer(0)},
	{Category: domain.CategoryVibe, Text: "If {username} went viral, what would it be for?", Options: []string{"Epic thread", "Hilarious meme", "Hot take", "Tech breakthrough"}, Answer: answerUnspecified},
	{Category: domain.CategoryVibe, Text: "What's {username}'s social media energy?", Options: []string{"Tech guru", "Meme maestro", "Philosopher", "Party starter"}, Answer: answerUnspecified},
	{Category: domain.CategoryOnlineHabits, Text: "What's {username}'s tweet frequency vibe?", Options: []string{"Daily poster", "Ghost then flood", "Once a week", "Random bursts"}, Answer: domain.DerivedAnswer(domain.DeriveNightOwl)},
	{Category: domain.CategoryMindset, Text: "What's {username}'s Twitter personality trait?", Options: []string{"Creative", "Organized", "Social", "Spicy"}, Answer: domain.DerivedAnswer(domain.DeriveOpennessCreative)},
	{Category: domain.CategoryVibe, Text: "What's {username}'s ideal Twitter moment?", Options: []string{"Viral meme", "Deep thread", "Tech debate", "Chill Q&A"}, Answer: answerUnspecified},
}
