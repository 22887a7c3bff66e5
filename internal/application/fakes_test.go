package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/happnhere-api/internal/domain/entity"
	"github.com/oksasatya/happnhere-api/internal/infrastructure/memory"
)

type published struct {
	key  string
	body any
}

type fakePublisher struct {
	mu   sync.Mutex
	msgs []published
	err  error
}

func (p *fakePublisher) PublishJSON(_ context.Context, key string, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, published{key: key, body: body})
	return p.err
}

func (p *fakePublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.msgs))
	for _, m := range p.msgs {
		out = append(out, m.key)
	}
	return out
}

type fakeIndex struct {
	docs      map[int64]entity.Event
	searchErr error
}

func newFakeIndex() *fakeIndex { return &fakeIndex{docs: map[int64]entity.Event{}} }

func (f *fakeIndex) Index(_ context.Context, e entity.Event) error {
	f.docs[e.ID] = e
	return nil
}

func (f *fakeIndex) Remove(_ context.Context, id int64) error {
	delete(f.docs, id)
	return nil
}

func (f *fakeIndex) Search(_ context.Context, q string, _ int) ([]int64, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	var ids []int64
	for id, e := range f.docs {
		if strings.EqualFold(e.Category, q) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type fakeStorage struct {
	path, contentType, body string
	err                     error
}

func (f *fakeStorage) Upload(_ context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, _ := io.ReadAll(r)
	f.path, f.contentType, f.body = objectPath, contentType, string(b)
	return "https://storage.googleapis.com/bucket/" + objectPath, nil
}

var errBoom = errors.New("boom")

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func fixedNow() time.Time { return time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC) }

type fixture struct {
	users    *memory.UserRepository
	pub      *fakePublisher
	userSvc  *UserService
	eventSvc *EventService
	clubSvc  *ClubService
}

func newFixture() *fixture {
	users := memory.NewUserRepository()
	pub := &fakePublisher{}
	f := &fixture{
		users:    users,
		pub:      pub,
		userSvc:  NewUserService(users, nil, nil, nil, pub, quietLogger()),
		eventSvc: NewEventService(memory.NewEventRepository(), users, nil, pub, quietLogger()),
		clubSvc:  NewClubService(memory.NewClubRepository(), users, pub, quietLogger()),
	}
	f.userSvc.Now = fixedNow
	f.eventSvc.Now = fixedNow
	f.clubSvc.Now = fixedNow
	return f
}
