package wizard

import (
	"github.com/sirupsen/logrus"

	"wizard-server/pkg/deck"
)

// State is the lifecycle state of a session
type State int

// session states
const (
	StateWaiting State = iota
	StateBidding
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateBidding:
		return "bidding"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameOver"
	}

	return "unknown"
}

// Session owns all mutable state for a single game of Wizard. A session is
// not safe for concurrent use; the caller must apply commands one at a time
// (see pkg/room for the per-game run loop).
//
// Every mutating method returns the ordered list of events the transport
// layer should deliver. Validation failures return an error, mutate nothing,
// and produce no events.
type Session struct {
	gameID  string
	options Options
	logger  logrus.FieldLogger

	players    []*Player
	idToPlayer map[string]*Player

	deck      *deck.Deck
	state     State
	round     int
	maxRounds int

	cardsPerHand int
	bids         map[string]int
	currentTrick []PlayedCard
	trickHistory [][]PlayedCard

	// index into players of whoever leads the current trick
	leadIndex int
}

// NewSession returns a new session for the given game ID with a freshly
// shuffled deck, waiting for players to join
func NewSession(logger logrus.FieldLogger, gameID string, options Options) *Session {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	d := deck.New()
	d.Shuffle()

	return &Session{
		gameID:     gameID,
		options:    options,
		logger:     logger.WithField("game", gameID),
		idToPlayer: make(map[string]*Player),
		deck:       d,
		state:      StateWaiting,
		round:      1,
		bids:       make(map[string]int),
	}
}

// GameID returns the game identifier
func (s *Session) GameID() string {
	return s.gameID
}

// State returns the current lifecycle state
func (s *Session) State() State {
	return s.state
}

// Round returns the current round number, starting at 1
func (s *Session) Round() int {
	return s.round
}

// Players returns the players in turn order
func (s *Session) Players() []*Player {
	players := make([]*Player, len(s.players))
	copy(players, s.players)

	return players
}

// Join adds a player to the game. New players are only seated while the
// session is waiting; a round in progress counts its players in bid- and
// trick-completion checks, and a handless joiner would stall both.
func (s *Session) Join(playerID, name string) ([]Event, error) {
	// a rejoin must report as such so reconnects stay silent
	if _, found := s.idToPlayer[playerID]; found {
		return nil, ErrPlayerAlreadyJoined
	}

	switch s.state {
	case StateGameOver:
		return nil, ErrGameOver
	case StateBidding, StatePlaying:
		return nil, ErrRoundInProgress
	}

	player := NewPlayer(playerID, name)
	s.players = append(s.players, player)
	s.idToPlayer[playerID] = player

	s.logger.WithField("player", playerID).Debug("player joined")

	return []Event{newEvent(EventPlayerJoined, PlayerJoinedData{Players: s.playerInfos()})}, nil
}

// Leave removes a player from the game. Removal is count-sensitive: bidding
// and trick completion both compare against the player count, so both checks
// are re-run after the removal.
func (s *Session) Leave(playerID string) ([]Event, error) {
	player, found := s.idToPlayer[playerID]
	if !found {
		return nil, ErrUnknownPlayer
	}

	for i, p := range s.players {
		if p == player {
			s.players = append(s.players[:i], s.players[i+1:]...)
			if s.leadIndex > i {
				s.leadIndex--
			}
			break
		}
	}

	if len(s.players) > 0 {
		s.leadIndex %= len(s.players)
	} else {
		s.leadIndex = 0
	}

	delete(s.idToPlayer, playerID)
	delete(s.bids, playerID)

	s.logger.WithField("player", playerID).Debug("player left")

	events := []Event{newEvent(EventPlayerLeft, PlayerLeftData{ID: player.ID, Name: player.Name})}

	if len(s.players) < 2 {
		return events, nil
	}

	switch s.state {
	case StateBidding:
		if len(s.bids) == len(s.players) {
			events = append(events, s.completeBidding())
		}
	case StatePlaying:
		// discard the leaver's play; a trick must hold exactly one card
		// per remaining player before it can resolve
		for i, play := range s.currentTrick {
			if play.PlayerID == playerID {
				s.currentTrick = append(s.currentTrick[:i], s.currentTrick[i+1:]...)
				break
			}
		}

		if len(s.currentTrick) >= len(s.players) {
			events = append(events, s.finishTrick()...)
		} else if s.handsEmpty() {
			events = append(events, s.scoreRound()...)
		}
	}

	return events, nil
}

// StartRound deals the current round and opens bidding.
// Valid only while the session is waiting; rounds after the first start
// automatically once the previous round has been scored.
func (s *Session) StartRound() ([]Event, error) {
	switch s.state {
	case StateGameOver:
		return nil, ErrGameOver
	case StateBidding, StatePlaying:
		return nil, ErrRoundInProgress
	}

	if len(s.players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	if s.options.cardsPerHand(s.round)*len(s.players) > deck.Size {
		return nil, ErrTooManyPlayers
	}

	if s.maxRounds == 0 {
		s.maxRounds = s.options.MaxRounds
		if s.maxRounds == 0 {
			// standard schedule: play until the deck is fully dealt
			s.maxRounds = deck.Size/len(s.players) - s.options.CardsPerRoundOffset
		}
	}

	return s.startRound()
}

// SubmitBid records a player's bid for the current round.
// Once every player has bid, play begins.
func (s *Session) SubmitBid(playerID string, bid int) ([]Event, error) {
	switch s.state {
	case StateGameOver:
		return nil, ErrGameOver
	case StateWaiting:
		return nil, ErrRoundNotStarted
	case StatePlaying:
		return nil, ErrBiddingComplete
	}

	if _, found := s.idToPlayer[playerID]; !found {
		return nil, ErrUnknownPlayer
	}

	if bid < 0 {
		return nil, ErrInvalidBid
	}

	if _, found := s.bids[playerID]; found {
		return nil, ErrDuplicateBid
	}

	s.bids[playerID] = bid
	s.logger.WithField("player", playerID).WithField("bid", bid).Debug("bid recorded")

	events := []Event{newEvent(EventBidRecorded, BidRecordedData{PlayerID: playerID, Bid: bid})}

	if len(s.bids) == len(s.players) {
		events = append(events, s.completeBidding())
	}

	return events, nil
}

// PlayCard plays a card from the player's hand into the current trick. When
// the trick is complete it is resolved, and when the round's last trick
// resolves the round is scored and the next round (or the end of the game)
// follows in the same event batch.
func (s *Session) PlayCard(playerID string, card *deck.Card) ([]Event, error) {
	switch s.state {
	case StateGameOver:
		return nil, ErrGameOver
	case StateWaiting:
		return nil, ErrRoundNotStarted
	case StateBidding:
		return nil, ErrBiddingNotComplete
	}

	player, found := s.idToPlayer[playerID]
	if !found {
		return nil, ErrUnknownPlayer
	}

	if !player.hand.HasCard(card) {
		return nil, ErrCardNotInHand
	}

	if s.options.StrictPlay {
		if err := s.canPlayCard(player, card); err != nil {
			return nil, err
		}
	}

	played := player.takeCard(card)

	s.currentTrick = append(s.currentTrick, PlayedCard{PlayerID: playerID, Card: played})

	s.logger.WithField("player", playerID).WithField("card", played.String()).Debug("card played")

	events := []Event{newEvent(EventCardPlayed, CardPlayedData{PlayerID: playerID, Card: played})}

	if len(s.currentTrick) == len(s.players) {
		events = append(events, s.finishTrick()...)
	}

	return events, nil
}

// canPlayCard enforces strict-mode validation: the player must act in turn,
// and must follow the lead suit when holding it. Wizards and Jesters are
// always playable.
func (s *Session) canPlayCard(player *Player, card *deck.Card) error {
	turn := (s.leadIndex + len(s.currentTrick)) % len(s.players)
	if s.players[turn] != player {
		return ErrNotPlayersTurn
	}

	if card.IsWizard() || card.IsJester() {
		return nil
	}

	if suit, ok := leadSuit(s.currentTrick); ok && card.Suit != suit && player.hand.HasSuit(suit) {
		return ErrMustFollowSuit
	}

	return nil
}

func (s *Session) startRound() ([]Event, error) {
	var events []Event

	cardsPerHand := s.options.cardsPerHand(s.round)
	if !s.deck.CanDraw(cardsPerHand * len(s.players)) {
		s.deck.Shuffle()
		s.logger.WithField("round", s.round).Info("deck reshuffled")
		events = append(events, newEvent(EventDeckReshuffled, DeckReshuffledData{Round: s.round}))
	}

	hands, err := s.deck.Deal(len(s.players), cardsPerHand)
	if err != nil {
		// even a full deck cannot cover this round
		return nil, err
	}

	s.cardsPerHand = cardsPerHand
	s.bids = make(map[string]int)
	s.currentTrick = nil
	s.trickHistory = nil
	s.leadIndex = 0

	for i, player := range s.players {
		player.newRound(hands[i])
		events = append(events, newPrivateEvent(player.ID, EventHandDealt, HandDealtData{Hand: hands[i].Clone()}))
	}

	s.state = StateBidding
	s.logger.WithField("round", s.round).WithField("cardsPerHand", cardsPerHand).Info("round started")

	events = append(events, newEvent(EventRoundStarted, RoundStartedData{Round: s.round, CardsPerHand: cardsPerHand}))
	return events, nil
}

func (s *Session) completeBidding() Event {
	s.state = StatePlaying

	bids := make(map[string]int, len(s.bids))
	for id, bid := range s.bids {
		bids[id] = bid
	}

	return newEvent(EventBidsComplete, BidsCompleteData{Bids: bids})
}

func (s *Session) finishTrick() []Event {
	trick := s.currentTrick
	s.currentTrick = nil
	s.trickHistory = append(s.trickHistory, trick)

	winnerID, ok := ResolveTrick(trick)
	if ok {
		for i, player := range s.players {
			if player.ID == winnerID {
				player.tricksWon++
				s.leadIndex = i
				break
			}
		}
	}

	s.logger.WithField("winner", winnerID).Debug("trick resolved")

	events := []Event{newEvent(EventTrickResolved, TrickResolvedData{WinnerID: winnerID, Trick: trick})}

	if s.handsEmpty() {
		events = append(events, s.scoreRound()...)
	}

	return events
}

func (s *Session) handsEmpty() bool {
	for _, player := range s.players {
		if len(player.hand) > 0 {
			return false
		}
	}

	return true
}

// scoreRound applies the round's score deltas and either advances to the
// next round or ends the game
func (s *Session) scoreRound() []Event {
	scores := make(map[string]int, len(s.players))
	for _, player := range s.players {
		player.score += RoundScore(s.bids[player.ID], player.tricksWon)
		scores[player.ID] = player.score
	}

	s.logger.WithField("round", s.round).WithField("scores", scores).Info("round scored")

	events := []Event{newEvent(EventRoundScored, RoundScoredData{Round: s.round, Scores: scores})}

	next := s.round + 1
	needNext := s.options.cardsPerHand(next) * len(s.players)
	if s.round >= s.maxRounds || needNext > deck.Size {
		s.state = StateGameOver
		s.logger.Info("game over")
		return append(events, newEvent(EventGameOver, GameOverData{FinalScores: s.playerInfos()}))
	}

	s.round = next
	s.state = StateWaiting

	nextEvents, err := s.startRound()
	if err != nil {
		// unreachable: the needNext check above covers the full deck
		s.logger.WithError(err).Error("could not start next round")
		return events
	}

	return append(events, nextEvents...)
}

func (s *Session) playerInfos() []PlayerInfo {
	infos := make([]PlayerInfo, len(s.players))
	for i, player := range s.players {
		infos[i] = player.info()
	}

	return infos
}
