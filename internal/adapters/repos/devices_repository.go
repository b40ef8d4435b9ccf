package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/architeacher/device-inventory/internal/domain/model"
	"github.com/architeacher/device-inventory/pkg/logger"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const fieldName = "name"

type (
	// CollectionOps defines the interface for document collection operations.
	// This allows injecting mock implementations for testing.
	CollectionOps interface {
		FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
		Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error)
		InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
		UpdateOne(ctx context.Context, filter any, update any, opts ...options.Lister[options.UpdateOneOptions]) (*mongo.UpdateResult, error)
		DeleteOne(ctx context.Context, filter any, opts ...options.Lister[options.DeleteOneOptions]) (*mongo.DeleteResult, error)
	}

	// Pinger reports server reachability. Satisfied by *mongo.Client.
	Pinger interface {
		Ping(ctx context.Context, rp *readpref.ReadPref) error
	}

	// DevicesRepository handles device persistence operations against a
	// single collection with a unique index on the name field.
	DevicesRepository struct {
		coll   CollectionOps
		pinger Pinger
		logger logger.Logger
	}

	// deviceDoc deliberately omits the storage _id so it never leaks into
	// domain objects or responses.
	deviceDoc struct {
		Name      string `bson:"name"`
		IPAddress string `bson:"ip_address"`
		Type      string `bson:"type"`
		Location  string `bson:"location"`
	}
)

// NewDevicesRepository creates a new DevicesRepository with the given dependencies.
func NewDevicesRepository(coll CollectionOps, pinger Pinger, log logger.Logger) *DevicesRepository {
	return &DevicesRepository{
		coll:   coll,
		pinger: pinger,
		logger: log,
	}
}

func (r *DevicesRepository) Create(ctx context.Context, device *model.Device) error {
	_, err := r.coll.InsertOne(ctx, toDeviceDoc(device))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ErrDuplicateDevice
		}

		return fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}

	return nil
}

func (r *DevicesRepository) GetByName(ctx context.Context, name string) (*model.Device, error) {
	var doc deviceDoc

	err := r.coll.FindOne(ctx, bson.M{fieldName: name}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrDeviceNotFound
		}

		return nil, fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}

	return fromDeviceDoc(doc)
}

func (r *DevicesRepository) List(ctx context.Context) ([]*model.Device, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}
	defer cursor.Close(ctx)

	var docs []deviceDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}

	devices := make([]*model.Device, 0, len(docs))
	for index := range docs {
		device, err := fromDeviceDoc(docs[index])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
		}
		devices = append(devices, device)
	}

	return devices, nil
}

func (r *DevicesRepository) Update(ctx context.Context, device *model.Device) error {
	result, err := r.coll.UpdateOne(
		ctx,
		bson.M{fieldName: device.Name},
		bson.M{"$set": bson.M{
			"ip_address": device.IPAddress,
			"type":       device.Type.String(),
			"location":   device.Location,
		}},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}

	if result.MatchedCount == 0 {
		return model.ErrDeviceNotFound
	}

	return nil
}

func (r *DevicesRepository) Delete(ctx context.Context, name string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{fieldName: name})
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}

	if result.DeletedCount == 0 {
		return model.ErrDeviceNotFound
	}

	return nil
}

// Ping verifies the server answers and the collection is query-capable.
// An empty collection counts as healthy.
func (r *DevicesRepository) Ping(ctx context.Context) error {
	if err := r.pinger.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}

	var doc deviceDoc

	err := r.coll.FindOne(ctx, bson.D{}).Decode(&doc)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}

	return nil
}

func toDeviceDoc(device *model.Device) deviceDoc {
	return deviceDoc{
		Name:      device.Name,
		IPAddress: device.IPAddress,
		Type:      device.Type.String(),
		Location:  device.Location,
	}
}

func fromDeviceDoc(doc deviceDoc) (*model.Device, error) {
	deviceType, err := model.ParseDeviceType(doc.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to parse device type: %w", err)
	}

	return &model.Device{
		Name:      doc.Name,
		IPAddress: doc.IPAddress,
		Type:      deviceType,
		Location:  doc.Location,
	}, nil
}
