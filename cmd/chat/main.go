package main

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"mychat-client/bridge"
	"mychat-client/domain"
	"mychat-client/domain/event"
	apperrors "mychat-client/errors"
	"mychat-client/internal"
	"mychat-client/presence"
	"mychat-client/projection"
	"mychat-client/repositories"
	"mychat-client/rest"
	"mychat-client/services"
	"mychat-client/socket"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chat terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	sessionRepository := repositories.NewSessionRepository(db)

	// 3. Engine wiring
	// The token provider reads the pending token during login (the profile
	// fetch happens before the session is persisted), then the session one.
	var session *services.SessionService
	pending := &pendingToken{}
	tokenProvider := func() string {
		if t := pending.get(); t != "" {
			return t
		}
		return session.Token()
	}

	api := rest.NewClient(config.APIBaseURL, tokenProvider, logger, config.RequestTimeout, config.MaxUploadBytes)
	timeline := projection.NewTimeline(api, logger)
	chats := projection.NewChatList(api, logger)
	tracker := presence.NewTracker()

	// The socket hands raw envelopes to the bridge; the bridge emits read
	// receipts back through the socket. The indirection below breaks the
	// construction cycle.
	var br *bridge.Bridge
	lifecycle := socket.NewLifecycle(config.SocketURL, func(env socket.Envelope) {
		br.Dispatch(env)
	}, logger)
	br = bridge.New(timeline, chats, tracker, lifecycle, logger)

	typist := presence.NewTypist(lifecycle, logger, config.TypingIdle)

	stdin := bufio.NewScanner(os.Stdin)
	confirm := func(prompt string) bool {
		fmt.Printf("%s [y/N] ", prompt)
		if !stdin.Scan() {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(stdin.Text()))
		return answer == "y" || answer == "yes"
	}

	sender := services.NewSendService(api, timeline, chats, typist, logger)
	chatting := services.NewChatService(api, timeline, chats, tracker, typist, confirm, logger)
	profile := services.NewProfileService(api, sessionRepository, logger)
	session = services.NewSessionService(sessionRepository, lifecycle, br, logger)

	session.OnIdentity(func(user domain.User) {
		timeline.SetViewer(user.ID)
		sender.SetIdentity(user.ID)
		chatting.SetIdentity(user.ID)
		color.Green.Printf("Signed in as %s\n", user.DisplayName())
	})

	br.AttachSink(&notifier{timeline: timeline, chats: chats, session: session})

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Session restore
	switch err := session.Restore(); {
	case err == nil:
		if err := chats.Refresh(ctx); err != nil {
			logger.Warn("initial chat list refresh failed", "error", err)
		}
	case stderrors.Is(err, apperrors.ErrNoIdentity):
		fmt.Println("No stored session. Use /login <token> to sign in.")
	case stderrors.Is(err, apperrors.ErrSessionExpired):
		fmt.Println("Session expired. Use /login <token> to sign in again.")
	default:
		return exitRuntime, fmt.Errorf("session restore failed: %w", err)
	}

	// 6. REPL
	repl := &repl{
		api:      api,
		timeline: timeline,
		chats:    chats,
		tracker:  tracker,
		typist:   typist,
		sender:   sender,
		chatting: chatting,
		profile:  profile,
		session:  session,
		pending:  pending,
		stdin:    stdin,
	}

	fmt.Println("Type /help for commands.")
	done := make(chan struct{})
	go func() {
		defer close(done)
		repl.loop(ctx)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case <-done:
	}

	// 7. Final Cleanup (Graceful Shutdown)
	lifecycle.Clear()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

// notifier surfaces messages that land outside the open conversation.
// Those only bump the unread counters in the stores; without this the
// terminal would stay silent until the next /chats.
type notifier struct {
	timeline *projection.Timeline
	chats    *projection.ChatList
	session  *services.SessionService
}

func (n *notifier) Consume(_ context.Context, e event.Event) error {
	msg, ok := e.(event.NewMessage)
	if !ok {
		return nil
	}
	self, _ := n.session.Identity()
	if msg.SenderID == self.ID || msg.SenderID == n.timeline.PeerID() {
		return nil
	}
	label := msg.SenderID
	if conv, found := n.chats.FindByPeer(msg.SenderID); found {
		label = conv.OtherParticipant.DisplayName()
	}
	color.Yellow.Printf("\nNew message from %s: %s\n", label, messagePreview(msg.Message))
	return nil
}

// pendingToken holds the bearer token between /login and session activation.
type pendingToken struct {
	mu    sync.Mutex
	token string
}

func (p *pendingToken) get() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token
}

func (p *pendingToken) set(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = token
}

type repl struct {
	api      *rest.Client
	timeline *projection.Timeline
	chats    *projection.ChatList
	tracker  *presence.Tracker
	typist   *presence.Typist
	sender   *services.SendService
	chatting *services.ChatService
	profile  *services.ProfileService
	session  *services.SessionService
	pending  *pendingToken
	stdin    *bufio.Scanner
}

func (r *repl) loop(ctx context.Context) {
	for {
		if peer := r.timeline.PeerID(); peer != "" {
			fmt.Printf("[%s] > ", r.peerLabel(peer))
		} else {
			fmt.Print("> ")
		}
		if !r.stdin.Scan() {
			return
		}
		line := strings.TrimSpace(r.stdin.Text())
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			return
		}
		if err := r.dispatch(ctx, line); err != nil {
			var failure *apperrors.SendFailure
			if stderrors.As(err, &failure) {
				color.Red.Printf("Send failed: %v (draft kept: %q)\n", failure.Err, failure.Draft)
				continue
			}
			color.Red.Printf("Error: %v\n", err)
		}
	}
}

func (r *repl) dispatch(ctx context.Context, line string) error {
	if !strings.HasPrefix(line, "/") {
		peer := r.timeline.PeerID()
		if peer == "" {
			return apperrors.ErrNoActiveChat
		}
		return r.sender.SendText(ctx, peer, line)
	}

	command, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)

	switch command {
	case "/help":
		printHelp()
		return nil
	case "/login":
		return r.login(ctx, args)
	case "/logout":
		return r.session.Logout()
	case "/chats":
		if err := r.chats.Refresh(ctx); err != nil {
			return err
		}
		r.renderChats()
		return nil
	case "/open":
		if err := r.chatting.Open(ctx, args); err != nil {
			return err
		}
		r.renderTimeline()
		return nil
	case "/close":
		r.chatting.CloseActive()
		return nil
	case "/history":
		r.renderTimeline()
		return nil
	case "/start":
		conv, err := r.chatting.StartByPhone(ctx, args)
		if err != nil {
			return err
		}
		fmt.Printf("Chat with %s opened.\n", conv.OtherParticipant.DisplayName())
		r.renderTimeline()
		return nil
	case "/media":
		return r.sendMedia(ctx, args)
	case "/react":
		messageID, emoji, _ := strings.Cut(args, " ")
		return r.chatting.React(ctx, messageID, strings.TrimSpace(emoji))
	case "/unreact":
		return r.chatting.Unreact(ctx, args)
	case "/delmsg":
		messageID, scope, _ := strings.Cut(args, " ")
		return r.chatting.DeleteMessage(ctx, messageID, strings.TrimSpace(scope) == "all")
	case "/archive":
		return r.chatting.Archive(ctx)
	case "/delete":
		return r.chatting.Delete(ctx)
	case "/clear":
		return r.chatting.ClearMessages(ctx)
	case "/name":
		userID, name, _ := strings.Cut(args, " ")
		return r.chatting.SaveContactName(ctx, userID, strings.TrimSpace(name))
	case "/unname":
		return r.chatting.DeleteContactName(ctx, args)
	case "/profile":
		return r.showProfile(ctx, args)
	case "/about":
		user, err := r.profile.UpdateAbout(ctx, args)
		if err != nil {
			return err
		}
		fmt.Printf("About updated: %s\n", user.About)
		return nil
	case "/picture":
		return r.updatePicture(ctx, args)
	case "/theme":
		return r.profile.UpdateTheme(ctx, args)
	default:
		return fmt.Errorf("unknown command %q, try /help", command)
	}
}

func (r *repl) login(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("usage: /login <token>")
	}
	r.pending.set(token)
	defer r.pending.set("")

	user, err := r.api.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if err := r.session.Login(user, token); err != nil {
		return err
	}
	return r.chats.Refresh(ctx)
}

func (r *repl) sendMedia(ctx context.Context, path string) error {
	peer := r.timeline.PeerID()
	if peer == "" {
		return apperrors.ErrNoActiveChat
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	kind := mediaKind(mimetype.Detect(data).String())
	return r.sender.SendMedia(ctx, peer, filepath.Base(path), data, kind)
}

func (r *repl) updatePicture(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	url, err := r.profile.UpdatePicture(ctx, filepath.Base(path), data)
	if err != nil {
		return err
	}
	fmt.Printf("Profile picture updated: %s\n", url)
	return nil
}

func (r *repl) showProfile(ctx context.Context, userID string) error {
	var user domain.User
	var err error
	if userID == "" {
		user, err = r.profile.Own(ctx)
	} else {
		user, err = r.profile.Of(ctx, userID)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n", user.DisplayName(), user.PhoneNumber)
	if user.About != "" {
		fmt.Printf("About: %s\n", user.About)
	}
	if user.IsOnline {
		color.Green.Println("Online")
	} else {
		fmt.Printf("Last seen: %s\n", internal.FormatLastSeen(user.LastSeen))
	}
	return nil
}

func (r *repl) renderChats() {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Peer", "Name", "Last Message", "When", "Unread", ""})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)

	for _, conv := range r.chats.Snapshot() {
		if conv.Archived || conv.Deleted {
			continue
		}
		peer := conv.OtherParticipant
		preview, when := "", ""
		if conv.LastMessage != nil {
			preview = messagePreview(*conv.LastMessage)
			when = internal.FormatTimestamp(conv.LastMessage.CreatedAt)
		}
		unread := ""
		if conv.UnreadCount > 0 {
			unread = fmt.Sprintf("%d", conv.UnreadCount)
		}
		table.Append([]string{
			peer.ID,
			peer.DisplayName(),
			preview,
			when,
			unread,
			r.presenceLabel(peer),
		})
	}
	table.Render()
}

func (r *repl) renderTimeline() {
	self, _ := r.session.Identity()
	for _, m := range r.timeline.Visible() {
		stamp := internal.FormatTimestamp(m.CreatedAt)
		body := messagePreview(m)
		if len(m.Reactions) > 0 {
			emojis := make([]string, 0, len(m.Reactions))
			for _, e := range m.Reactions {
				emojis = append(emojis, e)
			}
			body = fmt.Sprintf("%s  [%s]", body, strings.Join(emojis, " "))
		}
		if m.SenderID == self.ID {
			color.Cyan.Printf("%s  you: %s %s\n", stamp, body, statusTick(m.Status))
			continue
		}
		fmt.Printf("%s  %s: %s\n", stamp, r.peerLabel(m.SenderID), body)
	}
	if indicator := r.tracker.IndicatorFor(r.timeline.PeerID()); indicator != presence.IndicatorNone {
		color.Gray.Printf("%s is %s...\n", r.peerLabel(r.timeline.PeerID()), indicator)
	}
}

func (r *repl) presenceLabel(peer domain.User) string {
	if indicator := r.tracker.IndicatorFor(peer.ID); indicator != presence.IndicatorNone {
		return string(indicator) + "..."
	}
	if peer.IsOnline {
		return "online"
	}
	return ""
}

func (r *repl) peerLabel(peerID string) string {
	if conv, ok := r.chats.FindByPeer(peerID); ok {
		return conv.OtherParticipant.DisplayName()
	}
	return peerID
}

func messagePreview(m domain.Message) string {
	if m.IsDeleted {
		return "This message was deleted"
	}
	switch m.Type {
	case domain.TypeImage:
		return "[image]"
	case domain.TypeAudio:
		return "[audio]"
	case domain.TypeVideo:
		return "[video]"
	default:
		return m.Text
	}
}

func statusTick(status domain.MessageStatus) string {
	switch status {
	case domain.StatusRead:
		return color.Blue.Render("✓✓")
	case domain.StatusDelivered:
		return "✓✓"
	default:
		return "✓"
	}
}

func mediaKind(mime string) domain.MessageType {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return domain.TypeImage
	case strings.HasPrefix(mime, "audio/"):
		return domain.TypeAudio
	case strings.HasPrefix(mime, "video/"):
		return domain.TypeVideo
	default:
		return domain.TypeText
	}
}

func printHelp() {
	fmt.Println(`Commands:
  /login <token>        sign in with a bearer token
  /logout               sign out (theme preference is kept)
  /chats                list conversations
  /open <userID>        open a conversation
  /close                close the active conversation
  /history              reprint the active conversation
  /start <phone>        find a user by phone number and open a chat
  <text>                send a message to the active conversation
  /media <path>         send an image, audio or video file
  /react <msgID> <emoji>
  /unreact <msgID>
  /delmsg <msgID> [all] delete a message (for everyone with "all")
  /archive              archive the active conversation
  /delete               delete the active conversation
  /clear                clear all messages in the active conversation
  /name <userID> <name> save a contact name override
  /unname <userID>      remove a contact name override
  /profile [userID]     show a profile
  /about <text>         update your about line
  /picture <path>       update your profile picture
  /theme <light|dark>   switch theme
  /quit`)
}
