package controllers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/healthsetu/provider-portal/api"
	"github.com/healthsetu/provider-portal/demo"
	"github.com/healthsetu/provider-portal/utils"
)

type doctorForm struct {
	Name            string `form:"name" validate:"required,min=3"`
	Specialization  string `form:"specialization" validate:"required"`
	ExperienceYears string `form:"experience_years" validate:"required"`
	ConsultationFee string `form:"consultation_fee" validate:"required"`
	Qualification   string `form:"qualification" validate:"required"`
	Bio             string `form:"bio"`
}

var doctorMessages = map[string]string{
	"Name.required":            "Doctor name is required",
	"Name.min":                 "Name must be at least 3 characters",
	"Specialization.required":  "Specialization is required",
	"ExperienceYears.required": "Experience is required",
	"ConsultationFee.required": "Consultation fee is required",
	"Qualification.required":   "Qualification is required",
}

// Doctors renders the doctor list and the add-doctor form.
func Doctors(c *fiber.Ctx) error {
	return renderDoctors(c, fiber.Map{})
}

func renderDoctors(c *fiber.Ctx, data fiber.Map) error {
	specializations, err := API.Specializations(apiCtx(c, providerToken(c)))
	if err != nil {
		// The select degrades to empty; the form still works.
		log.Printf("Error fetching specializations: %v", err)
	}

	data["Title"] = "Doctor Management"
	data["Specializations"] = specializations
	data["Doctors"] = demo.Doctors()
	return render(c, "doctors", data)
}

// AddDoctor validates the form and registers the doctor with the backend.
func AddDoctor(c *fiber.Ctx) error {
	form := new(doctorForm)
	if err := c.BodyParser(form); err != nil {
		return renderDoctors(c, fiber.Map{"ErrorMessage": "Cannot parse form"})
	}

	errs := utils.Validate(form, doctorMessages)
	if errs == nil {
		errs = map[string]string{}
	}

	experience, err := strconv.Atoi(form.ExperienceYears)
	if _, present := errs["ExperienceYears"]; !present {
		if err != nil {
			errs["ExperienceYears"] = "Please enter a valid number"
		} else if experience < 0 {
			errs["ExperienceYears"] = "Experience cannot be negative"
		}
	}

	fee, err := strconv.ParseFloat(form.ConsultationFee, 64)
	if _, present := errs["ConsultationFee"]; !present {
		if err != nil {
			errs["ConsultationFee"] = "Please enter a valid number"
		} else if fee < 0 {
			errs["ConsultationFee"] = "Fee cannot be negative"
		}
	}

	if len(errs) > 0 {
		return renderDoctors(c, fiber.Map{"Errors": errs, "Form": form})
	}

	providerID, _ := c.Locals("providerID").(string)
	err = API.AddDoctor(apiCtx(c, providerToken(c)), api.AddDoctorRequest{
		ProviderID:      providerID,
		Name:            form.Name,
		Specialization:  form.Specialization,
		ExperienceYears: experience,
		Qualification:   form.Qualification,
		ConsultationFee: fee,
		Bio:             form.Bio,
	})
	if err != nil {
		log.Printf("Error adding doctor: %v", err)
		setFlashError(c, sid(c), "Failed to add doctor")
		return c.Redirect("/doctors")
	}

	setFlash(c, sid(c), "Doctor added successfully!")
	return c.Redirect("/doctors")
}
