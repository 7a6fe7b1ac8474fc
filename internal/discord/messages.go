package discord

// Friendly message constants for Discord responses
const (
	MsgCooldownActive  = "⏳ **Whoa there!**\nThe wheel needs a rest before your next spin."
	MsgCooldownWait    = "Try again in **%d minute(s)**."
	MsgNoWheel         = "🛠️ **No Wheel Yet**\nAn admin has not set up the wheel."
	MsgWheelBroken     = "🛠️ **Wheel Misconfigured**\nAn admin needs to fix the prize list."
	MsgServiceDown     = "🔌 **Service Unavailable**\nPlease try again in a moment."
	MsgSlowDown        = "🐢 **Slow Down**\nToo many requests. Try again shortly."
	MsgNoSpinsYet      = "You have not spun the wheel yet. Try `/spin`!"
	MsgReadyToSpin     = "✅ The wheel is ready. Use `/spin`!"
	MsgGenericError    = "❌ Something went wrong."
	MsgPong            = "Pong! 🏓 The wheel is online."
	MsgHistoryPageInfo = "Page %d • %d spin(s) in total"
)
