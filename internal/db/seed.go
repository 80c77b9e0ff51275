package db

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/QuangTrungK15/motel-management/internal/config"
	"github.com/QuangTrungK15/motel-management/internal/domain/auth"
	"github.com/QuangTrungK15/motel-management/internal/domain/room"
	"github.com/QuangTrungK15/motel-management/internal/domain/settings"
)

// Seed writes the startup defaults: the admin account, the room inventory and
// the settings keys. Every step is idempotent, existing rows are never
// overwritten.
func Seed(gdb *gorm.DB, cfg config.SeedConfig) error {
	if !cfg.Enabled {
		return nil
	}

	if err := seedAdmin(gdb, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := seedRooms(gdb, cfg.RoomCount); err != nil {
		return fmt.Errorf("seed rooms: %w", err)
	}
	if err := seedSettings(gdb); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	return nil
}

func seedAdmin(gdb *gorm.DB, cfg config.SeedConfig) error {
	var existing auth.User
	err := gdb.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	if err := gdb.Create(&auth.User{Username: cfg.AdminUsername, Password: hash}).Error; err != nil {
		return err
	}
	log.Printf("seed: created admin user %q", cfg.AdminUsername)
	return nil
}

// seedRooms creates rooms 101..10x and 201..20x split over two floors, all
// vacant at the default rate. Skipped entirely once any room exists.
func seedRooms(gdb *gorm.DB, count int) error {
	var existing int64
	if err := gdb.Model(&room.Room{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 || count <= 0 {
		return nil
	}

	perFloor := (count + 1) / 2
	rooms := make([]room.Room, 0, count)
	for i := 0; i < count; i++ {
		floor := i/perFloor + 1
		number := floor*100 + i%perFloor + 1
		rooms = append(rooms, room.Room{
			Number:       number,
			Name:         fmt.Sprintf("Room %d", number),
			Floor:        floor,
			Rate:         settings.DefaultRoomRate,
			MaxOccupants: 5,
			Status:       room.StatusVacant,
		})
	}

	if err := gdb.Create(&rooms).Error; err != nil {
		return err
	}
	log.Printf("seed: created %d rooms", len(rooms))
	return nil
}

func seedSettings(gdb *gorm.DB) error {
	for key, value := range settings.Defaults() {
		var existing settings.Setting
		err := gdb.Where("key = ?", key).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := gdb.Create(&settings.Setting{Key: key, Value: value}).Error; err != nil {
			return err
		}
	}
	return nil
}
