package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/a-team/clinic-booking-api/internal/models"
)

type ClientRepo struct {
	col *mongo.Collection
}

func NewClientRepo(db *mongo.Database) *ClientRepo {
	return &ClientRepo{col: db.Collection("clients")}
}

func (r *ClientRepo) Create(ctx context.Context, client *models.Client) (*models.Client, error) {
	client.ID = primitive.NewObjectID()
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now
	if client.Status == "" {
		client.Status = models.StatusPending
	}
	if _, err := r.col.InsertOne(ctx, client); err != nil {
		return nil, fmt.Errorf("could not create this client: %w", err)
	}
	return client, nil
}

func (r *ClientRepo) FindByEmail(ctx context.Context, email string) (*models.Client, error) {
	var client models.Client
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&client)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not find this user %s: %w", email, err)
	}
	return &client, nil
}

func (r *ClientRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	var client models.Client
	err := r.col.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(hidePassword)).Decode(&client)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not show this client: %w", err)
	}
	return &client, nil
}

// FindByIDWithPassword is for old-password verification only; every other
// read path strips the hash.
func (r *ClientRepo) FindByIDWithPassword(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	var client models.Client
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&client)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not find this client: %w", err)
	}
	return &client, nil
}

func (r *ClientRepo) List(ctx context.Context) ([]models.Client, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetProjection(hidePassword))
	if err != nil {
		return nil, fmt.Errorf("could not find any clients: %w", err)
	}
	defer cursor.Close(ctx)

	clients := make([]models.Client, 0)
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("could not find any clients: %w", err)
	}
	return clients, nil
}

func (r *ClientRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Client, error) {
	fields["updatedAt"] = time.Now()
	var client models.Client
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After).SetProjection(hidePassword),
	).Decode(&client)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not update this client: %w", err)
	}
	return &client, nil
}

func (r *ClientRepo) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) (*models.Client, error) {
	return r.Update(ctx, id, bson.M{"password": hash})
}

func (r *ClientRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("could not delete this client: %w", err)
	}
	return nil
}

// ActivateByCode flips a pending account to Active when its confirmation code
// matches. Returns false when no account carries the code.
func (r *ClientRepo) ActivateByCode(ctx context.Context, code string) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"confirmationCode": code},
		bson.M{"$set": bson.M{"status": models.StatusActive, "updatedAt": time.Now()}},
	)
	if err != nil {
		return false, fmt.Errorf("could not verify this email: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// SetResetToken stores a forgot-password token with a 24 hour expiry on the
// account behind the email.
func (r *ClientRepo) SetResetToken(ctx context.Context, email, token string) (*models.Client, error) {
	expires := time.Now().Add(24 * time.Hour)
	var client models.Client
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{
			"forgotPasswordToken":     token,
			"forgotPasswordExpiresAt": expires,
			"updatedAt":               time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&client)
	if err != nil {
		return nil, fmt.Errorf("could not find this user %s: %w", email, err)
	}
	return &client, nil
}

// ResetPasswordByToken swaps the password behind an unexpired reset token and
// clears the token.
func (r *ClientRepo) ResetPasswordByToken(ctx context.Context, token, hash string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{
			"forgotPasswordToken":     token,
			"forgotPasswordExpiresAt": bson.M{"$gt": time.Now()},
		},
		bson.M{"$set": bson.M{"password": hash, "updatedAt": time.Now()},
			"$unset": bson.M{"forgotPasswordToken": "", "forgotPasswordExpiresAt": ""}},
	)
	if err != nil {
		return fmt.Errorf("could not find user: %w", err)
	}
	if res.MatchedCount == 0 {
		return errors.New("could not find user")
	}
	return nil
}
