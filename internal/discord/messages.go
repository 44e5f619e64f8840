package discord

// Friendly message constants for Discord responses
const (
	// Drop tables & simulation
	MsgMonsterNotFound  = "❓ **Monster Not Found**\nCouldn't find that monster on the wiki. Maybe check the spelling?"
	MsgNoDropData       = "📜 **No Drop Data**\nThat monster doesn't seem to have a drop table."
	MsgWikiUnavailable  = "🌐 **Wiki Unavailable**\nThe wiki isn't responding right now. Try again in a bit."
	MsgInvalidKillCount = "⚔️ **Invalid Kill Count**\nKill count must be between 1 and 10,000."

	// Prices
	MsgItemNotFound = "❓ **Item Not Found**\nThat item isn't traded on the Grand Exchange."

	// Games
	MsgInvalidMove = "✂️ **Invalid Move**\nPick rock, paper or scissors."

	// System
	MsgAPIUnreachable = "🔌 **Server Unreachable**\nError connecting to the game server."
	MsgGenericError   = "❌ Something went wrong."
)
