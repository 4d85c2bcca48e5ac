package app

import (
	"fmt"

	authService "github.com/allisson/crewhub/internal/auth/service"
	companyHTTP "github.com/allisson/crewhub/internal/company/http"
	companyRepository "github.com/allisson/crewhub/internal/company/repository"
	companyUseCase "github.com/allisson/crewhub/internal/company/usecase"
	employeeHTTP "github.com/allisson/crewhub/internal/employee/http"
	employeeRepository "github.com/allisson/crewhub/internal/employee/repository"
	employeeUseCase "github.com/allisson/crewhub/internal/employee/usecase"
	managerHTTP "github.com/allisson/crewhub/internal/manager/http"
	managerRepository "github.com/allisson/crewhub/internal/manager/repository"
	managerUseCase "github.com/allisson/crewhub/internal/manager/usecase"
	orderHTTP "github.com/allisson/crewhub/internal/order/http"
	orderRepository "github.com/allisson/crewhub/internal/order/repository"
	orderUseCase "github.com/allisson/crewhub/internal/order/usecase"
	videoHTTP "github.com/allisson/crewhub/internal/video/http"
	videoRepository "github.com/allisson/crewhub/internal/video/repository"
	videoUseCase "github.com/allisson/crewhub/internal/video/usecase"
)

// CompanyUseCase returns the company use case instance.
func (c *Container) CompanyUseCase() (companyUseCase.CompanyUseCase, error) {
	c.companyUCInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["companyUC"] = fmt.Errorf("failed to get database for company use case: %w", err)
			return
		}

		var repo companyUseCase.CompanyRepository
		switch c.config.DBDriver {
		case "mysql":
			repo = companyRepository.NewMySQLCompanyRepository(db)
		case "postgres":
			repo = companyRepository.NewPostgreSQLCompanyRepository(db)
		default:
			c.initErrors["companyUC"] = unsupportedDriverError(c.config.DBDriver)
			return
		}

		c.companyUC = companyUseCase.NewCompanyUseCase(repo)
	})
	if err, exists := c.initErrors["companyUC"]; exists {
		return nil, err
	}
	return c.companyUC, nil
}

// ManagerUseCase returns the manager use case instance.
func (c *Container) ManagerUseCase() (managerUseCase.ManagerUseCase, error) {
	c.managerUCInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["managerUC"] = fmt.Errorf("failed to get database for manager use case: %w", err)
			return
		}

		var repo managerUseCase.ManagerRepository
		switch c.config.DBDriver {
		case "mysql":
			repo = managerRepository.NewMySQLManagerRepository(db)
		case "postgres":
			repo = managerRepository.NewPostgreSQLManagerRepository(db)
		default:
			c.initErrors["managerUC"] = unsupportedDriverError(c.config.DBDriver)
			return
		}

		companyUC, err := c.CompanyUseCase()
		if err != nil {
			c.initErrors["managerUC"] = err
			return
		}

		// The secret service is stateless, building a dedicated instance here
		// keeps the feature independent from the auth stack initialization.
		c.managerUC = managerUseCase.NewManagerUseCase(repo, companyUC, authService.NewSecretService())
	})
	if err, exists := c.initErrors["managerUC"]; exists {
		return nil, err
	}
	return c.managerUC, nil
}

// EmployeeUseCase returns the employee use case instance.
func (c *Container) EmployeeUseCase() (employeeUseCase.EmployeeUseCase, error) {
	c.employeeUCInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["employeeUC"] = fmt.Errorf("failed to get database for employee use case: %w", err)
			return
		}

		var repo employeeUseCase.EmployeeRepository
		switch c.config.DBDriver {
		case "mysql":
			repo = employeeRepository.NewMySQLEmployeeRepository(db)
		case "postgres":
			repo = employeeRepository.NewPostgreSQLEmployeeRepository(db)
		default:
			c.initErrors["employeeUC"] = unsupportedDriverError(c.config.DBDriver)
			return
		}

		companyUC, err := c.CompanyUseCase()
		if err != nil {
			c.initErrors["employeeUC"] = err
			return
		}

		c.employeeUC = employeeUseCase.NewEmployeeUseCase(repo, companyUC, authService.NewCredentialDeriver())
	})
	if err, exists := c.initErrors["employeeUC"]; exists {
		return nil, err
	}
	return c.employeeUC, nil
}

// VideoUseCase returns the video use case instance.
func (c *Container) VideoUseCase() (videoUseCase.VideoUseCase, error) {
	c.videoUCInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["videoUC"] = fmt.Errorf("failed to get database for video use case: %w", err)
			return
		}

		var repo videoUseCase.VideoRepository
		switch c.config.DBDriver {
		case "mysql":
			repo = videoRepository.NewMySQLVideoRepository(db)
		case "postgres":
			repo = videoRepository.NewPostgreSQLVideoRepository(db)
		default:
			c.initErrors["videoUC"] = unsupportedDriverError(c.config.DBDriver)
			return
		}

		companyUC, err := c.CompanyUseCase()
		if err != nil {
			c.initErrors["videoUC"] = err
			return
		}

		c.videoUC = videoUseCase.NewVideoUseCase(repo, companyUC)
	})
	if err, exists := c.initErrors["videoUC"]; exists {
		return nil, err
	}
	return c.videoUC, nil
}

// OrderUseCase returns the order use case instance.
func (c *Container) OrderUseCase() (orderUseCase.OrderUseCase, error) {
	c.orderUCInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["orderUC"] = fmt.Errorf("failed to get database for order use case: %w", err)
			return
		}

		var repo orderUseCase.OrderRepository
		switch c.config.DBDriver {
		case "mysql":
			repo = orderRepository.NewMySQLOrderRepository(db)
		case "postgres":
			repo = orderRepository.NewPostgreSQLOrderRepository(db)
		default:
			c.initErrors["orderUC"] = unsupportedDriverError(c.config.DBDriver)
			return
		}

		companyUC, err := c.CompanyUseCase()
		if err != nil {
			c.initErrors["orderUC"] = err
			return
		}

		c.orderUC = orderUseCase.NewOrderUseCase(repo, companyUC)
	})
	if err, exists := c.initErrors["orderUC"]; exists {
		return nil, err
	}
	return c.orderUC, nil
}

// CompanyHandler returns the company HTTP handler.
func (c *Container) CompanyHandler() (*companyHTTP.CompanyHandler, error) {
	useCase, err := c.CompanyUseCase()
	if err != nil {
		return nil, err
	}
	return companyHTTP.NewCompanyHandler(useCase, c.Logger()), nil
}

// ManagerHandler returns the manager HTTP handler.
func (c *Container) ManagerHandler() (*managerHTTP.ManagerHandler, error) {
	useCase, err := c.ManagerUseCase()
	if err != nil {
		return nil, err
	}
	return managerHTTP.NewManagerHandler(useCase, c.Logger()), nil
}

// EmployeeHandler returns the employee HTTP handler.
func (c *Container) EmployeeHandler() (*employeeHTTP.EmployeeHandler, error) {
	useCase, err := c.EmployeeUseCase()
	if err != nil {
		return nil, err
	}
	return employeeHTTP.NewEmployeeHandler(useCase, c.Logger()), nil
}

// VideoHandler returns the video HTTP handler.
func (c *Container) VideoHandler() (*videoHTTP.VideoHandler, error) {
	useCase, err := c.VideoUseCase()
	if err != nil {
		return nil, err
	}
	return videoHTTP.NewVideoHandler(useCase, c.Logger()), nil
}

// OrderHandler returns the order HTTP handler.
func (c *Container) OrderHandler() (*orderHTTP.OrderHandler, error) {
	useCase, err := c.OrderUseCase()
	if err != nil {
		return nil, err
	}
	return orderHTTP.NewOrderHandler(useCase, c.Logger()), nil
}
