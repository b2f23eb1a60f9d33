package types

type LoginRequest struct {
	Handle string `json:"handle"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type SwipeRequest struct {
	PersonaID string `json:"personaId"`
	Direction string `json:"direction"`
}

type SwipeResponse struct {
	IsMatch bool    `json:"isMatch"`
	ChatID  *string `json:"chatId"`
}

type ChatReplyRequest struct {
	ChatID    string `json:"chatId"`
	Message   string `json:"message"`
	PersonaID string `json:"personaId"`
}

type ChatReplyResponse struct {
	Content      string `json:"content"`
	LimitReached bool   `json:"limitReached,omitempty"`
}

type UsageResponse struct {
	SwipesUsed    int `json:"swipesUsed"`
	SwipesLimit   int `json:"swipesLimit"`
	MessagesUsed  int `json:"messagesUsed"`
	MessagesLimit int `json:"messagesLimit"`
}
