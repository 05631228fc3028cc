package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/contract"
	"github.com/PaulBilal/Edunova-School-System/internal/domain/entity"
)

// Unique index names; duplicate-key errors are mapped back through them.
const (
	emailIndex         = "email_unique"
	studentNumberIndex = "student_number_unique"
	staffNumberIndex   = "staff_number_unique"
)

var errMissingPasswordHash = errors.New("password is required")

type MongoUserRepository struct {
	collection *mongo.Collection
	hasher     contract.IHasher
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func NewMongoUserRepository(collection *mongo.Collection, hasher contract.IHasher) *MongoUserRepository {
	return &MongoUserRepository{collection: collection, hasher: hasher}
}

// EnsureIndexes creates the uniqueness constraints. Role numbers are sparse
// because each user carries only one of them.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName(emailIndex).SetUnique(true)},
		{Keys: bson.D{{Key: "studentNumber", Value: 1}}, Options: options.Index().SetName(studentNumberIndex).SetUnique(true).SetSparse(true)},
		{Keys: bson.D{{Key: "staffNumber", Value: 1}}, Options: options.Index().SetName(staffNumberIndex).SetUnique(true).SetSparse(true)},
	}
	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	if err := r.hashPendingPassword(user); err != nil {
		return err
	}
	if user.PasswordHash == "" {
		return errMissingPasswordHash
	}
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		user.ID = ""
		return mapWriteError(err)
	}
	return nil
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) GetUserByStudentNumber(ctx context.Context, studentNumber string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"studentNumber": studentNumber})
}

func (r *MongoUserRepository) GetUserByStaffNumber(ctx context.Context, staffNumber string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"staffNumber": staffNumber})
}

// UpdateUser sets the mutable fields of user. The password is written only
// when a new one was set on the entity; createdAt is never touched.
func (r *MongoUserRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	_, changed := user.PendingPassword()
	if err := r.hashPendingPassword(user); err != nil {
		return err
	}

	set := bson.M{
		"firstName":  user.FirstName,
		"lastName":   user.LastName,
		"email":      user.Email,
		"role":       user.Role,
		"isVerified": user.IsVerified,
	}
	unset := bson.M{}
	for field, value := range map[string]string{
		"studentNumber": user.StudentNumber,
		"staffNumber":   user.StaffNumber,
		"faculty":       user.Faculty,
		"campus":        user.Campus,
	} {
		if value == "" {
			unset[field] = ""
		} else {
			set[field] = value
		}
	}
	if changed {
		set["password"] = user.PasswordHash
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	if err != nil {
		return mapWriteError(err)
	}
	if result.MatchedCount == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) hashPendingPassword(user *entity.User) error {
	plain, ok := user.PendingPassword()
	if !ok {
		return nil
	}
	if plain == "" {
		return errMissingPasswordHash
	}
	hash, err := r.hasher.HashPassword(plain)
	if err != nil {
		return err
	}
	user.ApplyPasswordHash(hash)
	return nil
}

func mapWriteError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, emailIndex):
		return entity.ErrDuplicateEmail
	case strings.Contains(msg, studentNumberIndex):
		return entity.ErrDuplicateStudentNumber
	case strings.Contains(msg, staffNumberIndex):
		return entity.ErrDuplicateStaffNumber
	}
	return err
}
