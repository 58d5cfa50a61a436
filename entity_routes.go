package main

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"starWarsApi/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func entityRoutes(router fiber.Router) {
	router.Get("/users", GetUsers)
	router.Get("/user/:id", GetUser)
	router.Get("/characters", listRecords[models.Character])
	router.Get("/characters/:id", getRecord[models.Character]("Character not found."))
	router.Get("/planets", listRecords[models.Planet])
	router.Get("/planets/:id", getRecord[models.Planet]("Planet not found."))
	router.Get("/favorites", listRecords[models.Favorite])
	router.Get("/favorites/:id", getRecord[models.Favorite]("Favorite not found."))

	// older client paths, both answer with full user objects
	router.Get("/users/favorites", GetUsers)
	router.Get("/user/favorites/:id", GetUser)
}

func paramId(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 0)

	if err != nil {
		return 0, BadRequest(fmt.Sprintf("Invalid %s.", name))
	}

	return uint(id), nil
}

func orderById(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func GetUsers(c *fiber.Ctx) error {
	var users []models.User

	tx := Tx(c).Preload("Favorites", orderById).Order("id").Find(&users)

	if tx.Error != nil {
		return tx.Error
	}

	serialized := make([]*models.SerializedUser, len(users))

	for i := range users {
		serialized[i] = users[i].Serialize()
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"results": serialized})
}

func GetUser(c *fiber.Ctx) error {
	var u models.User

	id, err := paramId(c, "id")

	if err != nil {
		return err
	}

	tx := Tx(c).Preload("Favorites", orderById).First(&u, id)

	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return NotFound("User not found.")
	} else if tx.Error != nil {
		return tx.Error
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"results": u.Serialize()})
}

func listRecords[T any](c *fiber.Ctx) error {
	//goland:noinspection GoPreferNilSlice
	var records = []T{}

	tx := Tx(c).Order("id").Find(&records)

	if tx.Error != nil {
		return tx.Error
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"results": records})
}

func getRecord[T any](notFound string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var record T

		id, err := paramId(c, "id")

		if err != nil {
			return err
		}

		tx := Tx(c).First(&record, id)

		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return NotFound(notFound)
		} else if tx.Error != nil {
			return tx.Error
		}

		return c.Status(http.StatusOK).JSON(fiber.Map{"results": record})
	}
}

// Sitemap lists every registered endpoint.
func Sitemap(c *fiber.Ctx) error {
	//goland:noinspection GoPreferNilSlice
	endpoints := []string{}

	for _, route := range c.App().GetRoutes(true) {
		if route.Method == fiber.MethodHead {
			continue
		}

		endpoints = append(endpoints, route.Method+" "+route.Path)
	}

	sort.Strings(endpoints)

	return c.Status(http.StatusOK).JSON(fiber.Map{"results": endpoints})
}
