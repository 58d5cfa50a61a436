package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const txLocal = "tx"

// Transactional scopes every request to one transaction. It is committed when
// the handler answers below 400 and rolled back otherwise, including panics.
func Transactional(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tx := db.WithContext(c.UserContext()).Begin()

		if tx.Error != nil {
			return fmt.Errorf("begin transaction: %w", tx.Error)
		}

		committed := false

		defer func() {
			if !committed {
				tx.Rollback()
			}
		}()

		c.Locals(txLocal, tx)

		err := c.Next()

		if err != nil || c.Response().StatusCode() >= fiber.StatusBadRequest {
			return err
		}

		if err := tx.Commit().Error; err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}

		committed = true

		return nil
	}
}

func Tx(c *fiber.Ctx) *gorm.DB {
	return c.Locals(txLocal).(*gorm.DB)
}
