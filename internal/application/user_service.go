package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/happnhere-api/internal/domain/entity"
	"github.com/oksasatya/happnhere-api/internal/domain/message"
	repo "github.com/oksasatya/happnhere-api/internal/domain/repository"
)

type UserService struct {
	Repo        repo.UserRepository
	Credentials CredentialChecker
	Tokens      TokenIssuer
	Storage     ObjectStorage
	Publisher   Publisher
	Logger      *logrus.Logger
	Now         func() time.Time
}

func NewUserService(repo repo.UserRepository, creds CredentialChecker, tokens TokenIssuer, storage ObjectStorage, pub Publisher, logger *logrus.Logger) *UserService {
	if creds == nil {
		creds = PlainCredentials{}
	}
	if tokens == nil {
		tokens = PlaceholderTokens{}
	}
	return &UserService{
		Repo:        repo,
		Credentials: creds,
		Tokens:      tokens,
		Storage:     storage,
		Publisher:   pub,
		Logger:      logger,
		Now:         utcNow,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// Register creates a user with an empty profile picture and no interests.
// The email must not be used by any existing user (exact match).
func (s *UserService) Register(ctx context.Context, in RegisterInput) (entity.User, error) {
	stored, err := s.Credentials.Hash(in.Password)
	if err != nil {
		return entity.User{}, err
	}
	u, err := s.Repo.Create(ctx, entity.User{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Password:   stored,
		ProfilePic: "",
		Interests:  []string{},
		CreatedAt:  s.Now(),
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return entity.User{}, ErrEmailExists
	}
	if err != nil {
		return entity.User{}, err
	}
	counters.Add(metricUsersRegistered, 1)
	publish(ctx, s.Publisher, s.Logger, message.UserRegistered, message.UserRegisteredBody{
		Recipient: recipientOf(u),
		At:        u.CreatedAt,
	})
	return u, nil
}

type LoginResult struct {
	UserID    int64
	Token     string
	ExpiresAt time.Time
}

// Login looks up the first user whose email and password both match and
// issues a token for it.
func (s *UserService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	u, err := s.Repo.Find(ctx, func(u entity.User) bool {
		return u.Email == email && s.Credentials.Matches(u.Password, password)
	})
	if err != nil {
		counters.Add(metricLoginsFailed, 1)
		return LoginResult{}, ErrInvalidCredentials
	}
	token, exp, err := s.Tokens.Issue(ctx, u)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue token failed")
		}
		return LoginResult{}, err
	}
	return LoginResult{UserID: u.ID, Token: token, ExpiresAt: exp}, nil
}

// ResolveToken maps a login token back to its user id.
func (s *UserService) ResolveToken(ctx context.Context, token string) (int64, error) {
	return s.Tokens.Resolve(ctx, token)
}

func (s *UserService) GetProfile(ctx context.Context, userID int64) (entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return entity.User{}, ErrUserNotFound
	}
	return u, nil
}

// UpdateProfileInput fields left nil are not touched.
type UpdateProfileInput struct {
	Name       *string
	ProfilePic *string
	Interests  []string
	// SetInterests distinguishes an omitted interests field from an explicit empty list.
	SetInterests bool
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (entity.User, error) {
	u, err := s.Repo.Update(ctx, userID, func(u entity.User) (entity.User, error) {
		if in.Name != nil {
			u.Name = *in.Name
		}
		if in.ProfilePic != nil {
			u.ProfilePic = *in.ProfilePic
		}
		if in.SetInterests {
			u.Interests = append([]string{}, in.Interests...)
		}
		return u, nil
	})
	if errors.Is(err, repo.ErrNotFound) {
		return entity.User{}, ErrUserNotFound
	}
	return u, err
}

// UploadProfilePic stores the image in object storage and points the
// user's profile picture at it.
func (s *UserService) UploadProfilePic(ctx context.Context, userID int64, r io.Reader, filename, contentType string) (string, error) {
	if s.Storage == nil {
		return "", ErrStorageDisabled
	}
	if _, err := s.Repo.GetByID(ctx, userID); err != nil {
		return "", ErrUserNotFound
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("profile-pics", strconv.FormatInt(userID, 10), uuid.NewString()+ext))
	url, err := s.Storage.Upload(ctx, objectPath, contentType, r)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("profile picture upload failed")
		}
		return "", err
	}
	if _, err := s.UpdateProfile(ctx, userID, UpdateProfileInput{ProfilePic: &url}); err != nil {
		return "", err
	}
	return url, nil
}

func recipientOf(u entity.User) message.Recipient {
	return message.Recipient{UserID: u.ID, Name: u.Name, Email: u.Email}
}
