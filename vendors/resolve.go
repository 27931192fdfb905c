package vendors

import (
	"context"
	"log"
	"regexp"

	"shubharambh/db"
	"shubharambh/models"
	"shubharambh/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Session is the slice of the authenticated session resolution needs.
type Session struct {
	UserID string
	Email  string
	Name   string
}

// Finder abstracts the vendor lookups the resolution chain runs. The mongo
// implementation is below; tests substitute a fake.
type Finder interface {
	ByUserID(ctx context.Context, userID string) (*models.Vendor, error)
	ByEmail(ctx context.Context, email string) (*models.Vendor, error)
	ByOwnerName(ctx context.Context, name string) (*models.Vendor, error)
	SetUserID(ctx context.Context, vendorID, userID string) error
}

// Resolve locates the vendor record behind a session. Older vendor records
// predate the userId back-reference, so lookups fall through an ordered
// chain: stable user id, session email, a differing form-supplied email,
// then exact owner name. A nil result with nil error means "unregistered
// vendor" and callers present first-time onboarding, not an error.
//
// When a match is found via any email/name step and the record has no
// userId, it is backfilled so the next resolution hits the id step.
func Resolve(ctx context.Context, f Finder, sess Session, formEmail string) (*models.Vendor, error) {
	if sess.UserID != "" {
		v, err := f.ByUserID(ctx, sess.UserID)
		if err != nil {
			return nil, err
		}
		if v != nil {
			return v, nil
		}
	}

	lookups := []func() (*models.Vendor, error){
		func() (*models.Vendor, error) {
			if sess.Email == "" {
				return nil, nil
			}
			return f.ByEmail(ctx, utils.NormalizeEmail(sess.Email))
		},
		func() (*models.Vendor, error) {
			fe := utils.NormalizeEmail(formEmail)
			if fe == "" || fe == utils.NormalizeEmail(sess.Email) {
				return nil, nil
			}
			return f.ByEmail(ctx, fe)
		},
		func() (*models.Vendor, error) {
			if sess.Name == "" {
				return nil, nil
			}
			return f.ByOwnerName(ctx, sess.Name)
		},
	}

	for _, lookup := range lookups {
		v, err := lookup()
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		if v.UserID == "" && sess.UserID != "" {
			if err := f.SetUserID(ctx, v.VendorID, sess.UserID); err != nil {
				log.Printf("Vendor %s userId backfill failed: %v", v.VendorID, err)
			} else {
				v.UserID = sess.UserID
			}
		}
		return v, nil
	}

	return nil, nil
}

// mongoFinder runs the lookups against the vendors collection.
type mongoFinder struct{}

// DB is the Finder used by the HTTP handlers.
var DB Finder = mongoFinder{}

func (mongoFinder) ByUserID(ctx context.Context, userID string) (*models.Vendor, error) {
	return findOne(ctx, bson.M{"userId": userID})
}

func (mongoFinder) ByEmail(ctx context.Context, email string) (*models.Vendor, error) {
	return findOne(ctx, bson.M{"email": email})
}

func (mongoFinder) ByOwnerName(ctx context.Context, name string) (*models.Vendor, error) {
	pattern := "^" + regexp.QuoteMeta(name) + "$"
	return findOne(ctx, bson.M{"name": bson.M{"$regex": pattern, "$options": "i"}})
}

func (mongoFinder) SetUserID(ctx context.Context, vendorID, userID string) error {
	_, err := db.VendorsCollection.UpdateOne(ctx,
		bson.M{"vendorid": vendorID},
		bson.M{"$set": bson.M{"userId": userID}},
	)
	return err
}

func findOne(ctx context.Context, filter bson.M) (*models.Vendor, error) {
	var v models.Vendor
	err := db.VendorsCollection.FindOne(ctx, filter).Decode(&v)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SessionFromClaims builds a resolution session from JWT claims.
func SessionFromClaims(userID, email, name string) Session {
	return Session{UserID: userID, Email: email, Name: name}
}
